package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenameOrder_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		order    RenameOrder
		expected bool
	}{
		{name: "name is valid", order: RenameOrderName, expected: true},
		{name: "modified is valid", order: RenameOrderModified, expected: true},
		{name: "native is valid", order: RenameOrderNative, expected: true},
		{name: "empty string is invalid", order: RenameOrder(""), expected: false},
		{name: "unknown order is invalid", order: RenameOrder("random"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.order.IsValid())
		})
	}
}

func TestRenameOrder_Description(t *testing.T) {
	for _, o := range AllRenameOrders() {
		assert.NotEqual(t, unknownDescription, o.Description(), "order %s", o)
	}
	assert.Equal(t, unknownDescription, RenameOrder("bogus").Description())
}

func TestMetadataDispatch_IsValid(t *testing.T) {
	assert.True(t, MetadataDispatchExtension.IsValid())
	assert.True(t, MetadataDispatchClassifier.IsValid())
	assert.False(t, MetadataDispatch("").IsValid())
	assert.False(t, MetadataDispatch("magic").IsValid())

	for _, d := range AllMetadataDispatches() {
		assert.NotEqual(t, unknownDescription, d.Description())
	}
}

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	require.NotNil(t, settings)
	assert.Equal(t, "file_", settings.Rename.Prefix)
	assert.Equal(t, RenameOrderName, settings.Rename.Order)
	assert.Equal(t, 5, settings.Preview.Lines)
	assert.Equal(t, 100, settings.Preview.ThumbnailSize)
	assert.Equal(t, MetadataDispatchExtension, settings.Metadata.Dispatch)
	assert.False(t, settings.Classify.SystemMIMETable)
	assert.True(t, settings.History.Enabled)
}

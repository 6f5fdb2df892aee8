package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlan_AcceptedRejected(t *testing.T) {
	plan := &Plan{
		Operation: OperationRename,
		Actions: []PlannedAction{
			{Source: "/d/a", Destination: "/d/x_1_a"},
			{Source: "/d/b", Destination: "/d/x_2_b", Err: ErrConflict},
			{Source: "/d/c", Destination: "/d/x_3_c"},
		},
	}

	accepted := plan.Accepted()
	assert.Len(t, accepted, 2)
	assert.Equal(t, "/d/a", accepted[0].Source)
	assert.Equal(t, "/d/c", accepted[1].Source)

	rejected := plan.Rejected()
	assert.Len(t, rejected, 1)
	assert.Equal(t, "/d/b", rejected[0].Source)
}

func TestPlan_EmptyAccepted(t *testing.T) {
	plan := &Plan{}
	assert.NotNil(t, plan.Accepted())
	assert.Empty(t, plan.Accepted())
	assert.Nil(t, plan.Rejected())
}

func TestBatchResult_NewNames(t *testing.T) {
	result := &BatchResult{
		Applied: []Action{
			{Source: "/d/a.txt", Destination: "/d/new_1_a.txt"},
			{Source: `C:\d\b.txt`, Destination: `C:\d\new_2_b.txt`},
			{Source: "c", Destination: "new_3_c"},
		},
	}

	assert.Equal(t, []string{"new_1_a.txt", "new_2_b.txt", "new_3_c"}, result.NewNames())
	assert.False(t, result.HasFailures())

	result.Failed = append(result.Failed, ItemError{Path: "/d/x", Err: ErrOSFailure})
	assert.True(t, result.HasFailures())
}

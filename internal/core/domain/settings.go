package domain

const unknownDescription = "Unknown"

// Setting defaults.
const (
	DefaultRenamePrefix  = "file_"
	DefaultPreviewLines  = 5
	DefaultThumbnailSize = 100
)

// RenameOrder controls the order in which the renamer numbers files.
type RenameOrder string

// Available rename orders.
const (
	// RenameOrderName numbers files in lexicographic name order.
	RenameOrderName RenameOrder = "name"

	// RenameOrderModified numbers files by modification time, oldest first.
	RenameOrderModified RenameOrder = "modified"

	// RenameOrderNative uses the directory listing order of the filesystem.
	// The result differs between platforms.
	RenameOrderNative RenameOrder = "native"
)

// IsValid returns true if the order is recognised.
func (o RenameOrder) IsValid() bool {
	switch o {
	case RenameOrderName, RenameOrderModified, RenameOrderNative:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (o RenameOrder) String() string {
	return string(o)
}

// Description returns a human-readable description of the order.
func (o RenameOrder) Description() string {
	switch o {
	case RenameOrderName:
		return "Name (lexicographic)"
	case RenameOrderModified:
		return "Modified (oldest first)"
	case RenameOrderNative:
		return "Native (filesystem listing order)"
	default:
		return unknownDescription
	}
}

// MetadataDispatch selects how the metadata extractor picks a reader.
type MetadataDispatch string

// Available dispatch policies.
const (
	// MetadataDispatchExtension matches the literal suffixes .jpg, .png and .pdf.
	// Matching is case-sensitive and content is never sniffed.
	MetadataDispatchExtension MetadataDispatch = "extension"

	// MetadataDispatchClassifier uses the type classifier, including sniffing.
	MetadataDispatchClassifier MetadataDispatch = "classifier"
)

// IsValid returns true if the dispatch policy is recognised.
func (d MetadataDispatch) IsValid() bool {
	return d == MetadataDispatchExtension || d == MetadataDispatchClassifier
}

// String returns the string representation.
func (d MetadataDispatch) String() string {
	return string(d)
}

// Description returns a human-readable description of the policy.
func (d MetadataDispatch) Description() string {
	switch d {
	case MetadataDispatchExtension:
		return "Extension (.jpg/.png/.pdf suffix)"
	case MetadataDispatchClassifier:
		return "Classifier (extension table + content sniffing)"
	default:
		return unknownDescription
	}
}

// RenameSettings configures the bulk renamer.
type RenameSettings struct {
	Prefix string
	Order  RenameOrder
}

// PreviewSettings configures the previewer.
type PreviewSettings struct {
	Lines int
	// ThumbnailSize is the maximum width and height of a thumbnail.
	ThumbnailSize int
}

// MetadataSettings configures the metadata extractor.
type MetadataSettings struct {
	Dispatch MetadataDispatch
}

// ClassifySettings configures the type classifier.
type ClassifySettings struct {
	// SystemMIMETable also consults the host's MIME table after the built-in one.
	SystemMIMETable bool
}

// HistorySettings configures history recording.
type HistorySettings struct {
	Enabled bool
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Rename   RenameSettings
	Preview  PreviewSettings
	Metadata MetadataSettings
	Classify ClassifySettings
	History  HistorySettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Rename: RenameSettings{
			Prefix: DefaultRenamePrefix,
			Order:  RenameOrderName,
		},
		Preview: PreviewSettings{
			Lines:         DefaultPreviewLines,
			ThumbnailSize: DefaultThumbnailSize,
		},
		Metadata: MetadataSettings{
			Dispatch: MetadataDispatchExtension,
		},
		Classify: ClassifySettings{
			SystemMIMETable: false,
		},
		History: HistorySettings{
			Enabled: true,
		},
	}
}

// AllRenameOrders returns all rename orders.
func AllRenameOrders() []RenameOrder {
	return []RenameOrder{RenameOrderName, RenameOrderModified, RenameOrderNative}
}

// AllMetadataDispatches returns all metadata dispatch policies.
func AllMetadataDispatches() []MetadataDispatch {
	return []MetadataDispatch{MetadataDispatchExtension, MetadataDispatchClassifier}
}

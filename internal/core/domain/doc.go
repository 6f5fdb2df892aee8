// Package domain defines the core entities for smartfile.
//
// This package is the innermost layer of the hexagon. It defines the
// fundamental types shared by every service and adapter:
//
//   - MIMEType: a classified file type
//   - Metadata: per-category file metadata (image, PDF, generic file)
//   - Plan / BatchResult: planned and applied filesystem mutations
//   - AppSettings: user-configurable defaults
//   - HistoryEntry: a record of an applied move or rename
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

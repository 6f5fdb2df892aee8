// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ExtensionTable: extension to MIME type lookup
//   - SignatureSniffer: MIME type from leading content bytes
//   - ImageCodec: raster image decoding and thumbnailing
//   - PDFReader: PDF author and page count
//   - FileTimes: best-effort creation time
//   - ConfigStore: application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - HistoryStore: record of applied moves and renames
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven

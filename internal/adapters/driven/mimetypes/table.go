package mimetypes

import (
	"mime"
	"strings"

	"github.com/h2non/filetype"

	"github.com/custodia-labs/smartfile/internal/core/domain"
	"github.com/custodia-labs/smartfile/internal/core/ports/driven"
)

// Ensure Table implements the interface.
var _ driven.ExtensionTable = (*Table)(nil)

// builtinTypes maps lower-case extensions to MIME types.
var builtinTypes = map[string]domain.MIMEType{
	// Text
	".txt":      "text/plain",
	".text":     "text/plain",
	".log":      "text/plain",
	".conf":     "text/plain",
	".ini":      "text/plain",
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".csv":      "text/csv",
	".tsv":      "text/tab-separated-values",
	".html":     "text/html",
	".htm":      "text/html",
	".css":      "text/css",
	".js":       "text/javascript",
	".mjs":      "text/javascript",
	".ts":       "text/typescript",
	".go":       "text/x-go",
	".py":       "text/x-python",
	".rs":       "text/x-rust",
	".java":     "text/x-java",
	".c":        "text/x-c",
	".h":        "text/x-c",
	".cpp":      "text/x-c++",
	".rb":       "text/x-ruby",
	".sh":       "text/x-shellscript",
	".bash":     "text/x-shellscript",
	".sql":      "text/x-sql",
	".yaml":     "text/yaml",
	".yml":      "text/yaml",
	".toml":     "text/toml",
	".ics":      "text/calendar",
	".vcf":      "text/vcard",

	// Images
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".jpe":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".svg":  "image/svg+xml",
	".ico":  "image/vnd.microsoft.icon",
	".heic": "image/heic",
	".heif": "image/heif",
	".avif": "image/avif",

	// Audio
	".mp3":  "audio/mpeg",
	".wav":  "audio/x-wav",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".mid":  "audio/midi",

	// Video
	".mp4":  "video/mp4",
	".m4v":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",

	// Documents and archives
	".pdf":  "application/pdf",
	".json": "application/json",
	".xml":  "application/xml",
	".rtf":  "application/rtf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".epub": "application/epub+zip",
	".zip":  "application/zip",
	".gz":   "application/gzip",
	".tar":  "application/x-tar",
	".7z":   "application/x-7z-compressed",
	".bin":  "application/octet-stream",
	".exe":  "application/octet-stream",
	".eml":  "message/rfc822",
}

// Table is the extension tier of the type classifier.
type Table struct {
	system bool
}

// NewTable creates an extension table.
// When system is true the host MIME table is consulted after the built-in one.
func NewTable(system bool) *Table {
	return &Table{system: system}
}

// Lookup returns the MIME type registered for ext.
func (t *Table) Lookup(ext string) (domain.MIMEType, bool) {
	if ext == "" || ext == "." {
		return "", false
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	ext = strings.ToLower(ext)

	if m, ok := builtinTypes[ext]; ok {
		return m, true
	}

	if kind := filetype.GetType(strings.TrimPrefix(ext, ".")); kind != filetype.Unknown {
		if m, ok := domain.ParseMIMEType(kind.MIME.Value); ok {
			return m, true
		}
	}

	if t.system {
		// mime.TypeByExtension may append "; charset=utf-8"; ParseMIMEType strips it.
		if m, ok := domain.ParseMIMEType(mime.TypeByExtension(ext)); ok {
			return m, true
		}
	}

	return "", false
}

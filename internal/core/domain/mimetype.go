package domain

import "strings"

// MIMEType is a classified content type in type/subtype form.
type MIMEType string

// Common MIME types.
const (
	MIMETextPlain   MIMEType = "text/plain"
	MIMEImageJPEG   MIMEType = "image/jpeg"
	MIMEImagePNG    MIMEType = "image/png"
	MIMEPDF         MIMEType = "application/pdf"
	MIMEOctetStream MIMEType = "application/octet-stream"
)

// ParseMIMEType normalises s into a MIMEType.
// Parameters such as "; charset=utf-8" are dropped and the result is lower-cased.
// It returns false if s is not of the form type/subtype.
func ParseMIMEType(s string) (MIMEType, bool) {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = s[:i]
	}
	s = strings.ToLower(strings.TrimSpace(s))

	major, minor, ok := strings.Cut(s, "/")
	if !ok || major == "" || minor == "" || strings.Contains(minor, "/") {
		return "", false
	}
	return MIMEType(s), true
}

// Category returns the primary type, the text before the slash.
func (m MIMEType) Category() string {
	major, _, _ := strings.Cut(string(m), "/")
	return major
}

// Subtype returns the text after the slash.
func (m MIMEType) Subtype() string {
	_, minor, _ := strings.Cut(string(m), "/")
	return minor
}

// IsImage returns true for image/* types.
func (m MIMEType) IsImage() bool {
	return m.Category() == "image"
}

// String returns the string representation.
func (m MIMEType) String() string {
	return string(m)
}

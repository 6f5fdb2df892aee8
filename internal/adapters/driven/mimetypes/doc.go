// Package mimetypes implements the two classification tiers: an
// extension table and a content signature sniffer.
//
// The extension table is compiled in so that classification does not vary
// between hosts. Extensions known to the h2non/filetype registry are also
// recognised. The host MIME table (Go's mime package, which reads files such
// as /etc/mime.types) is consulted last and only when enabled.
package mimetypes

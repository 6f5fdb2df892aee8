package filesystem

import (
	"net/url"
	"strings"
)

// ResolvePath converts a command-line argument to a local path.
// file:// URIs (as pasted from a file manager) are decoded; bare paths
// pass through unchanged.
func ResolvePath(arg string) string {
	if !strings.HasPrefix(arg, "file://") {
		return arg
	}
	if u, err := url.Parse(arg); err == nil && u.Path != "" {
		return u.Path
	}
	return strings.TrimPrefix(arg, "file://")
}

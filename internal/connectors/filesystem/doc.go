// Package filesystem watches a local directory for incoming files.
// It backs the organize --watch mode of the CLI.
package filesystem

// Package connectors provides event sources outside the request/response
// flow of the CLI. The filesystem connector watches a directory so new
// files can be organized as they arrive.
package connectors

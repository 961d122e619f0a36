// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Redline. It lets AI assistants open documents, edit paragraphs,
// search and replace, and drive the tracked-changes and comment
// workflows over stdio or HTTP.
package mcp

import "errors"

// ErrMissingSessionService is returned when the session service is not provided.
var ErrMissingSessionService = errors.New("mcp: session service is required")

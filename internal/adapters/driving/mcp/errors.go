// Package mcp provides an MCP (Model Context Protocol) server adapter
// for hubsearch. It lets AI assistants run dashboard searches and read
// a user's recent searches.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

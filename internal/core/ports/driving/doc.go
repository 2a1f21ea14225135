// Package driving defines the inbound ports of the search core:
// interfaces external actors (CLI, TUI, MCP server) call into.
package driving

// Package file implements file-based configuration storage using TOML.
// Nested tables are flattened into dot-notation keys, so [search]
// debounce_ms = 300 is read back as "search.debounce_ms".
package file

// Package memory provides in-memory implementations of the driven
// record-store ports. They back tests and the demo wiring; the
// SQLite adapter is the persistent equivalent.
package memory

// Package driven defines the outbound ports of the search core:
// interfaces the core depends on and adapters implement. Record
// stores wrap the backing database, the identity provider answers
// role lookups, and the recent-search store persists per-user
// history.
package driven

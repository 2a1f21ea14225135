// Package services implements the search core: the dispatcher that
// fans a query out across the source adapters and merges the scored
// results, and the query session manager that debounces input,
// discards stale responses, and maintains per-user search history.
package services

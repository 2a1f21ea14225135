// Package domain contains the core business entities for Hubsearch.
// These types have no external dependencies and represent the
// vocabulary of the federated search engine: results, filters,
// identities, relevance scoring, and session state.
package domain

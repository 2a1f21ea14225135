// Package cli implements the hubsearch command-line interface using
// cobra. Commands are wired to core services through SetServices; a
// command invoked without its service reports a configuration error
// instead of panicking.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
	"github.com/custodia-labs/hubsearch/internal/core/ports/driven"
	"github.com/custodia-labs/hubsearch/internal/core/ports/driving"
	"github.com/custodia-labs/hubsearch/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	verbose  bool
	userFlag string
)

// Injected services. nil until SetServices is called.
var (
	searchService    driving.SearchService
	historyStore     driven.RecentSearchStore
	identityProvider driven.IdentityProvider
	sessionFactory   func(identity domain.Identity) driving.SessionService
)

// Services bundles everything the commands need.
type Services struct {
	Search   driving.SearchService
	History  driven.RecentSearchStore
	Identity driven.IdentityProvider

	// NewSession builds a query session for the TUI.
	NewSession func(identity domain.Identity) driving.SessionService
}

// SetServices injects the core services into the command tree.
func SetServices(s Services) {
	searchService = s.Search
	historyStore = s.History
	identityProvider = s.Identity
	sessionFactory = s.NewSession
}

var rootCmd = &cobra.Command{
	Use:   "hubsearch",
	Short: "Federated search across the marketplace dashboard",
	Long: `Hubsearch dispatches a query across the dashboard's sources -
marketplace tools, your own tool activations, user accounts, and
documentation - and returns one relevance-ranked result list.

User records are only visible to administrators.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "local", "caller user ID")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// callerIdentity resolves the --user flag into an identity. The role
// comes from the identity provider; sources re-check it themselves, so
// this value is advisory only.
func callerIdentity(ctx context.Context) domain.Identity {
	identity := domain.Identity{UserID: userFlag, Role: domain.RoleMember}
	if identityProvider == nil {
		return identity
	}

	role, err := identityProvider.Role(ctx, userFlag)
	if err != nil {
		logger.Warn("Resolving role for %s: %v", userFlag, err)
		return identity
	}
	identity.Role = role
	return identity
}

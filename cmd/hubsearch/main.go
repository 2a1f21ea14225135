// Command hubsearch is the federated dashboard search CLI.
package main

import (
	"fmt"
	"os"

	configfile "github.com/custodia-labs/hubsearch/internal/adapters/driven/config/file"
	historyfile "github.com/custodia-labs/hubsearch/internal/adapters/driven/history/file"
	"github.com/custodia-labs/hubsearch/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/hubsearch/internal/adapters/driving/cli"
	"github.com/custodia-labs/hubsearch/internal/core/domain"
	"github.com/custodia-labs/hubsearch/internal/core/ports/driving"
	"github.com/custodia-labs/hubsearch/internal/core/services"
	"github.com/custodia-labs/hubsearch/internal/logger"
	"github.com/custodia-labs/hubsearch/internal/sources/docs"
	"github.com/custodia-labs/hubsearch/internal/sources/project"
	"github.com/custodia-labs/hubsearch/internal/sources/tool"
	"github.com/custodia-labs/hubsearch/internal/sources/user"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settings := configfile.ResolveSettings(config)

	store, err := sqlite.NewStore(settings.DataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()
	logger.Debug("Store ready at %s", store.Path())

	history, err := historyfile.NewHistoryStore(settings.HistoryDir)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}

	searcher := services.NewSearchService(
		tool.New(store.ToolStore()),
		project.New(store.ActivationStore()),
		user.New(store.UserStore(), store.IdentityProvider()),
		docs.New(docs.DefaultCatalog()),
	)

	baseFilters := domain.SearchFilters{MinRelevance: settings.MinRelevance}

	cli.SetServices(cli.Services{
		Search:   searcher,
		History:  history,
		Identity: store.IdentityProvider(),
		NewSession: func(identity domain.Identity) driving.SessionService {
			return services.NewQuerySession(
				searcher, history, identity,
				services.WithDebounce(settings.Debounce),
				services.WithLimit(settings.SearchLimit),
				services.WithFilters(baseFilters),
			)
		},
	})
	cli.SetSeedStore(store)

	return cli.Execute()
}

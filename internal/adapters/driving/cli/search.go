package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
)

var (
	searchLimit        int
	searchJSON         bool
	searchTypes        []string
	searchCategories   []string
	searchMinRelevance int
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search across all dashboard sources",
	Long: `Dispatches the query to every enabled source - tools, your own
activations, users (administrators only), and documentation - and
prints the merged list ranked by relevance.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultSearchLimit, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringSliceVarP(&searchTypes, "type", "t", nil, "restrict to result types (tool, project, user, documentation)")
	searchCmd.Flags().StringSliceVarP(&searchCategories, "category", "c", nil, "restrict to categories")
	searchCmd.Flags().IntVar(&searchMinRelevance, "min-relevance", 0, "drop results scoring below this value")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	types, err := parseResultTypes(searchTypes)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	opts := domain.SearchOptions{
		Filters: domain.SearchFilters{
			Types:        types,
			Categories:   searchCategories,
			MinRelevance: searchMinRelevance,
		},
		Limit: searchLimit,
	}

	results, err := searchService.Search(ctx, query, callerIdentity(ctx), opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

// parseResultTypes validates the --type values.
func parseResultTypes(raw []string) ([]domain.ResultType, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	types := make([]domain.ResultType, 0, len(raw))
	for _, value := range raw {
		t := domain.ResultType(strings.ToLower(strings.TrimSpace(value)))
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, value)
		}
		types = append(types, t)
	}
	return types, nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		cmd.Printf("  [%d] %s (%d)\n", i+1, results[i].Title, results[i].Relevance)
		cmd.Printf("      %s  %s\n", results[i].Type, results[i].URL)
		if results[i].Description != "" {
			cmd.Printf("      %s\n", results[i].Description)
		}
		cmd.Println()
	}

	return nil
}

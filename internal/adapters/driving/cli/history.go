package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	Long:  `Lists the caller's recent searches, most recent first.`,
	RunE:  runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear recent searches",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyStore == nil {
		return domain.ErrHistoryUnavailable
	}

	entries, err := historyStore.List(cmd.Context(), userFlag)
	if err != nil {
		return fmt.Errorf("listing recent searches: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No recent searches.")
		return nil
	}

	for i, entry := range entries {
		cmd.Printf("  [%d] %s\n", i+1, entry)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyStore == nil {
		return domain.ErrHistoryUnavailable
	}

	if err := historyStore.Clear(cmd.Context(), userFlag); err != nil {
		return fmt.Errorf("clearing recent searches: %w", err)
	}
	cmd.Println("Recent searches cleared.")
	return nil
}

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hubsearch/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive search overlay",
	Long: `Launch the interactive terminal search overlay.

Typing is debounced: results refresh shortly after you pause, and an
older search can never overwrite a newer one. With an empty query the
overlay shows your recent searches instead.

Controls:
  /        - Open the overlay
  ctrl+k   - Toggle the overlay
  esc      - Close the overlay
  ↑/↓      - Navigate results
  enter    - Open the selected result
  ctrl+u   - Clear the query
  ctrl+x   - Clear recent searches
  ctrl+c   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if sessionFactory == nil {
		return errors.New("session factory not configured")
	}

	ctx := cmd.Context()
	session := sessionFactory(callerIdentity(ctx))

	chosen, err := tui.Run(ctx, &tui.Ports{Session: session})
	if err != nil {
		return err
	}

	if chosen != nil {
		cmd.Printf("%s\n", chosen.URL)
	}
	return nil
}

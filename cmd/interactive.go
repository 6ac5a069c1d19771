package cmd

import (
	"fmt"
	"os"

	"github.com/copydesk/copydesk/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var interactiveNoConfig bool

// interactiveCmd represents the interactive command.
var interactiveCmd = &cobra.Command{
	Use:   "interactive [path]",
	Short: "Launch interactive TUI for content quality review",
	Long: `Launch an interactive terminal UI to review content quality.

Posts are validated as they are found; browse the results, filter by
status, and inspect each post's issues and warnings in a detail panel.

Controls:
  ↑/↓ or j/k    Navigate through results
  f             Cycle result filter
  enter         Toggle the detail panel
  /             Filter by filename
  ?             Toggle help
  q             Quit`,
	Args: cobra.MaximumNArgs(1),
	Run:  runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	interactiveCmd.Flags().BoolVar(&interactiveNoConfig, "no-config", false,
		"Skip loading the .copydeskrc config file")
}

// runInteractive is the main entry point for the interactive command.
func runInteractive(_ *cobra.Command, args []string) {
	lc, err := LoadConfig(interactiveNoConfig)
	exitOnError(err, "Invalid config")

	path := lc.GetContentDir(getPathArg(args))
	opts := lc.BuildQualityOptions(0, nil, nil)

	p := tea.NewProgram(ui.New(path, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running interactive mode: %v\n", err)
		os.Exit(1)
	}
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set by main.go via SetVersion.
var version = "dev"

// SetVersion sets the version string (called from main).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "copydesk",
	Short:   "Editorial quality and SEO checks for markdown content",
	Version: version,
	Long: `Copydesk validates a markdown blog corpus against editorial
quality rules and SEO guidelines.

Posts are markdown files with front-matter. Use 'check' and 'seo'
for CI/scripts, 'list' and 'render' to inspect the corpus, or
'interactive' for a terminal UI experience.

Examples:
  copydesk check                 # Quality-check the content directory
  copydesk check ./src/content   # Check a specific directory
  copydesk check --format=json
  copydesk seo                   # Audit the configured SEO targets
  copydesk list                  # List posts, newest first
  copydesk render my-post        # Render one post to HTML
  copydesk interactive           # Launch interactive TUI`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1) //nolint:revive // deep-exit is acceptable for CLI entry points
	}
}

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/copydesk/copydesk/internal/post"

	"github.com/spf13/cobra"
)

// Flag variables for the render command.
var (
	renderOutput   string
	renderDir      string
	renderNoConfig bool
)

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render <slug>",
	Short: "Render a single post to HTML",
	Long: `Render one post's markdown body to HTML.

The slug is the post's filename without the .md extension. Output
goes to stdout, or to a file with --output.

Examples:
  copydesk render hotel-pricing
  copydesk render hotel-pricing --output=hotel-pricing.html
  copydesk render hotel-pricing --dir=./src/content/posts`,
	Args: cobra.ExactArgs(1),
	Run:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "",
		"Write HTML to file instead of stdout")
	renderCmd.Flags().StringVarP(&renderDir, "dir", "d", "",
		"Content directory (defaults to config or src/content/posts)")
	renderCmd.Flags().BoolVar(&renderNoConfig, "no-config", false,
		"Skip loading the .copydeskrc config file")
}

// runRender is the main entry point for the render command.
func runRender(_ *cobra.Command, args []string) {
	lc, err := LoadConfig(renderNoConfig)
	exitOnError(err, "Invalid config")

	dir := lc.GetContentDir(renderDir)
	slug := args[0]

	p, err := post.NewRepository(dir).Get(slug)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Post not found: %s (looked in %s)\n", slug, dir)
			os.Exit(1)
		}
		exitOnError(err, "Error rendering post")
	}

	if renderOutput == "" {
		fmt.Print(p.ContentHTML)
		return
	}

	err = os.WriteFile(renderOutput, []byte(p.ContentHTML), 0o600)
	exitOnError(err, "Error writing file")
	fmt.Printf("Wrote %s to %s\n", slug, renderOutput)
}

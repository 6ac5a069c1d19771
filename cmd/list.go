package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/copydesk/copydesk/internal/helpers"
	"github.com/copydesk/copydesk/internal/post"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Flag variables for the list command.
var (
	listFormat   string
	listNoConfig bool
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List posts in the content directory",
	Long: `List every post in the content directory, newest first.

Missing front-matter fields are filled with defaults, the same way
the published site renders its index.

Examples:
  copydesk list                      # List the content directory
  copydesk list ./src/content/posts  # List a specific directory
  copydesk list --format=json
  copydesk list --format=yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFormat, "format", "f", "",
		"Output format: json, yaml (default: text)")
	listCmd.Flags().BoolVar(&listNoConfig, "no-config", false,
		"Skip loading the .copydeskrc config file")
}

// runList is the main entry point for the list command.
func runList(_ *cobra.Command, args []string) {
	lc, err := LoadConfig(listNoConfig)
	exitOnError(err, "Invalid config")

	dir := lc.GetContentDir(getPathArg(args))

	posts, err := post.NewRepository(dir).List()
	exitOnError(err, "Error listing posts")

	switch listFormat {
	case "":
		printPostList(dir, posts)
	case "json":
		data, err := json.MarshalIndent(posts, "", "  ")
		exitOnError(err, "Error formatting output")
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(posts)
		exitOnError(err, "Error formatting output")
		fmt.Print(string(data))
	default:
		fmt.Fprintf(os.Stderr, "Invalid format %q; valid formats: json, yaml\n", listFormat)
		os.Exit(1)
	}
}

// printPostList prints posts as a human-readable listing.
func printPostList(dir string, posts []post.Post) {
	if len(posts) == 0 {
		fmt.Printf("No posts found in %s.\n", dir)
		return
	}

	fmt.Printf("Found %d %s in %s\n\n",
		len(posts), helpers.Pluralize(len(posts), "post", "posts"), dir)
	for _, p := range posts {
		fmt.Printf("  %s  %-12s %s\n", p.Date, p.Category, p.Title)
		fmt.Printf("              slug: %s\n", p.Slug)
	}
}

package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/saffronlabs/menuboard/internal/catalog"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menuboard",
		Short: "Food menu page with LLM-generated descriptions and photos",
		Long: `Menuboard renders a restaurant menu where every item's description and
photo is generated on the fly by Gemini.

Serve the menu as a live web page, or generate a standalone HTML file.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newGenerateCmd())

	return cmd
}

// loadEntries returns the built-in menu, or the one read from menuPath
// when a --menu override was given.
func loadEntries(menuPath string) ([]catalog.Entry, error) {
	if menuPath == "" {
		return catalog.Default(), nil
	}
	entries, err := catalog.Load(menuPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu file: %w", err)
	}
	return entries, nil
}

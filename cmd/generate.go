package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/saffronlabs/menuboard/internal/config"
	"github.com/saffronlabs/menuboard/internal/gemini"
	"github.com/saffronlabs/menuboard/internal/menu"
	"github.com/saffronlabs/menuboard/internal/render"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var out string
	var menuFile string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a standalone HTML menu page",
		Long: `Runs description and photo generation for every menu item, waits for
all requests to finish, and writes the result as a single HTML file.`,
		Example: `  # Write the built-in menu to menu.html
  menuboard generate

  # Use a custom menu file and output path
  menuboard generate --menu menu.yaml --out dist/index.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			entries, err := loadEntries(menuFile)
			if err != nil {
				return err
			}

			client, err := gemini.New(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to create generation client: %w", err)
			}
			defer func() {
				if err := client.Close(); err != nil {
					slog.Error("Unable to close gemini client", "err", err)
				}
			}()

			slog.Info("Generating menu", "items", len(entries))

			board := menu.NewBoard(client, entries)
			board.Render(cmd.Context())
			board.Wait()

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer func() {
				if err := f.Close(); err != nil {
					slog.Error("Unable to close output file", "err", err)
				}
			}()

			page := render.PageData{
				Cards:     board.Cards(),
				PageError: board.PageError(),
			}
			if err := render.New().RenderPage(f, page); err != nil {
				return fmt.Errorf("failed to render menu page: %w", err)
			}

			slog.Info("Menu written", "path", out, "items", len(entries))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "menu.html", "Path of the HTML file to write")
	cmd.Flags().StringVarP(&menuFile, "menu", "m", "", "Path to a YAML menu file overriding the built-in menu")

	return cmd
}

package cli

import (
	"fmt"
	"os"

	"github.com/calebsorensen/notewright/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDocCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Manage reference documents injected into prompts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List loaded reference documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(app.Out, formatter.DocumentList(app.Store.Documents()))
			return nil
		},
	}

	var title, file string
	add := &cobra.Command{
		Use:   "add",
		Short: "Load a reference document from a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading document: %w", err)
			}
			if title == "" {
				title = file
			}
			d, err := app.Store.AddDocument(title, string(content))
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Added document %s (%s)\n", d.Title, d.ID)
			return nil
		},
	}
	add.Flags().StringVar(&title, "title", "", "document title (defaults to file path)")
	add.Flags().StringVar(&file, "file", "", "path to the document file")
	add.MarkFlagRequired("file")

	remove := &cobra.Command{
		Use:   "remove <doc-id>",
		Short: "Remove a reference document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.RemoveDocument(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Document removed.")
			return nil
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/internal/catalog"
	"github.com/mesh-intelligence/shelf/internal/report"
)

func newReportCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize the library by genre, decade and author",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if top < 1 {
				return userError(fmt.Errorf("--top must be at least 1, got %d", top))
			}
			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			r, err := report.Build(cmd.Context(), store.Books(), report.Options{TopAuthors: top})
			if err != nil {
				return sysError(fmt.Errorf("build report: %w", err))
			}
			return a.render(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().IntVar(&top, "top", report.DefaultTopAuthors, "number of authors to rank")
	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the library file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(catalog.Schema(), "", "  ")
			if err != nil {
				return sysError(fmt.Errorf("marshal schema: %w", err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

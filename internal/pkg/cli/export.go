package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/kobotools/kobotab/internal/pkg/api/koboapi"
	"github.com/kobotools/kobotab/internal/pkg/export/excel"
	"github.com/kobotools/kobotab/internal/pkg/flatten"
)

func exportCommand(root *RootCommand) *cobra.Command {
	var output string
	var opts koboapi.SubmissionOptions
	var separator string

	cmd := &cobra.Command{
		Use:   "export <asset-uid>",
		Short: "Export asset submissions to a xlsx file, one sheet per table.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := root.api(cmd.Context())
			if err != nil {
				return err
			}

			cfg := flatten.DefaultConfig()
			cfg.Separator = separator

			path, err := api.ExportExcel(afero.NewOsFs(), args[0], output, cfg, opts)
			if errors.Is(err, excel.ErrNoData) {
				return fmt.Errorf(`asset "%s" has no submissions`, args[0])
			}
			if err != nil {
				return err
			}

			root.logger.Infof(`Exported to "%s"`, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path, defaults to {uid}_{name}.xlsx")
	cmd.Flags().StringVar(&separator, "separator", "_", "separator of nested table names")
	cmd.Flags().StringVar(&opts.Query, "query", "", "JSON query passed to the data endpoint")
	cmd.Flags().IntVar(&opts.Start, "start", 0, "pagination offset")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "pagination limit")
	cmd.Flags().StringVar(&opts.SubmittedAfter, "submitted-after", "", "only submissions after this timestamp (ignored when --query is set)")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func assetsCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "List assets available to the token.",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := root.api(cmd.Context())
			if err != nil {
				return err
			}

			assets, err := api.ListAssets()
			if err != nil {
				return err
			}

			for _, asset := range assets {
				fmt.Fprintf(root.stdout, "%s\t%s\n", asset.Uid, asset.Name)
			}
			root.logger.Debugf("Listed %d assets.", len(assets))
			return nil
		},
	}
}

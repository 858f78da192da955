// Package cli defines the kobotab command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/kobotools/kobotab/internal/pkg/api/koboapi"
	"github.com/kobotools/kobotab/internal/pkg/build"
	"github.com/kobotools/kobotab/internal/pkg/log"
)

type flags struct {
	token    string
	endpoint string
	verbose  bool
}

// RootCommand is the parent of all commands.
type RootCommand struct {
	*cobra.Command
	flags  flags
	logger *zap.SugaredLogger
	stdout io.Writer
	stderr io.Writer
}

func NewRootCommand(stdout io.Writer, stderr io.Writer) *RootCommand {
	root := &RootCommand{stdout: stdout, stderr: stderr}
	root.Command = &cobra.Command{
		Use:           "kobotab",
		Short:         "Export KoboToolbox survey data to related flat tables.",
		Version:       build.BuildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Values from a .env file act as defaults
			_ = godotenv.Load()
			if root.flags.token == "" {
				root.flags.token = os.Getenv("KOBOTAB_TOKEN")
			}
			if root.flags.endpoint == "" {
				root.flags.endpoint = os.Getenv("KOBOTAB_ENDPOINT")
			}
			root.logger = log.NewLogger(stdout, stderr, root.flags.verbose)
		},
	}

	bindRootFlags(root.Command.PersistentFlags(), &root.flags)

	root.AddCommand(assetsCommand(root))
	root.AddCommand(exportCommand(root))
	return root
}

func bindRootFlags(fs *pflag.FlagSet, f *flags) {
	fs.StringVarP(&f.token, "token", "t", "", "API token (env KOBOTAB_TOKEN)")
	fs.StringVarP(&f.endpoint, "endpoint", "e", "", `endpoint alias or URL, "default" or "humanitarian" (env KOBOTAB_ENDPOINT)`)
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print details")
}

// Execute runs the command and returns the exit code.
func (root *RootCommand) Execute() int {
	if err := root.Command.Execute(); err != nil {
		fmt.Fprintf(root.stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

func (root *RootCommand) api(ctx context.Context) (*koboapi.Api, error) {
	if root.flags.token == "" {
		return nil, fmt.Errorf("missing API token, use --token or the KOBOTAB_TOKEN env var")
	}
	return koboapi.NewApi(ctx, root.logger, root.flags.endpoint, root.flags.token, root.flags.verbose), nil
}

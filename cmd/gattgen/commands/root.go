// SPDX-License-Identifier: AGPL-3.0-or-later

/*
gattgen - generates Go enumerations of Bluetooth GATT services and
characteristics from their XML specification files.

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bartekus/gattgen/cmd/gattgen/internal/clierr"
	"github.com/bartekus/gattgen/internal/logging"
)

// app carries state shared by every subcommand of one root command.
type app struct {
	verbose bool
	log     *zap.Logger
}

// NewRootCmd constructs the gattgen root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("GATTGEN_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	a := &app{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:           "gattgen",
		Short:         "gattgen - Bluetooth GATT enumeration generator",
		Long:          "gattgen reads GATT service and characteristic specification files and generates Go enumerations with UUID lookup helpers.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(a.verbose)
			if err != nil {
				return clierr.Wrap(clierr.ExitGeneric, "", err)
			}
			a.log = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierr.Wrap(clierr.ExitUsage, "", err)
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of gattgen",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "gattgen version %s\n", version)
		},
	})

	cmd.AddCommand(a.newGenerateCommand())
	cmd.AddCommand(a.newInspectCommand())
	cmd.AddCommand(newExpandCommand())

	return cmd
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return clierr.Wrap(clierr.ExitUsage, "", err)
		}
		return nil
	}
}

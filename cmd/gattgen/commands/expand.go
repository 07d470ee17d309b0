package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/gattgen/internal/identifier"
)

func newExpandCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "expand <short>...",
		Short: "Print the 128-bit identifier for each short code",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strict {
				for _, short := range args {
					if err := identifier.Validate(short); err != nil {
						return classify(err)
					}
				}
			}
			for _, short := range args {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), identifier.Expand(short))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Reject short codes that are not valid hex")

	return cmd
}

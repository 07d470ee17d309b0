package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bartekus/gattgen/cmd/gattgen/internal/clierr"
	"github.com/bartekus/gattgen/internal/emit"
	"github.com/bartekus/gattgen/internal/gattxml"
	"github.com/bartekus/gattgen/internal/idgen"
	"github.com/bartekus/gattgen/internal/projection"
)

func (a *app) newInspectCommand() *cobra.Command {
	var job idgen.Job

	cmd := &cobra.Command{
		Use:   "inspect <kind> <path>",
		Short: "Show the members a generation run would produce",
		Long:  "Parse the specification files at path and print the constant name, short code and UUID of every member as a Markdown table. Nothing is written.",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := gattxml.ParseKind(args[0])
			if err != nil {
				return clierr.Wrap(clierr.ExitUsage, "", err)
			}
			job.ID = "inspect"
			job.Kind = kind
			job.Input = args[1]
			job.OutputDir = "."
			if job.TypeName == "" {
				job.TypeName = defaultSpec(kind).Type
			}

			gen := &idgen.Generator{Log: a.log}
			enum, err := gen.Plan(cmd.Context(), job)
			if err != nil {
				return classify(err)
			}
			return writeInspection(cmd.OutOrStdout(), enum)
		},
	}

	cmd.Flags().StringVar(&job.TypeName, "type", "", "Enumeration type name used in the heading")
	cmd.Flags().StringVar(&job.MemberPrefix, "prefix", "", "Prefix for every generated constant")
	cmd.Flags().BoolVar(&job.Strict, "strict", false, "Reject short identifiers that are not valid hex")
	cmd.Flags().StringSliceVar(&job.IncludeExtensions, "ext", nil, "Only read files with these extensions from a directory")

	return cmd
}

func writeInspection(w io.Writer, enum emit.Enum) error {
	rows := make([][]string, 0, len(enum.Members))
	for _, m := range enum.Members {
		rows = append(rows, []string{m.Constant, m.Name, m.ShortCode, m.UUIDString})
	}

	heading := fmt.Sprintf("%s.%s (%d members)", enum.Package, enum.TypeName, len(enum.Members))
	if _, err := io.WriteString(w, projection.RenderHeader(2, heading)); err != nil {
		return err
	}
	_, err := io.WriteString(w, projection.RenderTable([]string{"Constant", "Name", "Short", "UUID"}, rows))
	return err
}

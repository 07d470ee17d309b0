// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/bartekus/gattgen/cmd/gattgen/internal/clierr"
	"github.com/bartekus/gattgen/internal/config"
	"github.com/bartekus/gattgen/internal/gattxml"
	"github.com/bartekus/gattgen/internal/idgen"
	"github.com/bartekus/gattgen/internal/projectroot"
	"github.com/bartekus/gattgen/internal/runner"
)

type runFlags struct {
	check  bool
	asJSON bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.check, "check", false, "Fail when generated files are out of date instead of writing them")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Output the run summary as JSON")
}

func (a *app) newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Go enumerations from GATT specification files",
	}

	cmd.AddCommand(a.newGenerateKindCommand(gattxml.KindService, "services"))
	cmd.AddCommand(a.newGenerateKindCommand(gattxml.KindCharacteristic, "characteristics"))
	cmd.AddCommand(a.newGenerateAllCommand())

	return cmd
}

// newGenerateKindCommand returns the single-job command for kind. Flag
// defaults follow the built-in job layout.
func (a *app) newGenerateKindCommand(kind gattxml.Kind, use string) *cobra.Command {
	def := defaultSpec(kind)
	job := idgen.Job{ID: use, Kind: kind}
	var rf runFlags

	cmd := &cobra.Command{
		Use:   use,
		Short: "Generate the " + use + " enumeration",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := job.Validate(); err != nil {
				return clierr.Wrap(clierr.ExitUsage, "", err)
			}
			return a.runJobs(cmd, []idgen.Job{job}, nil, rf)
		},
	}

	cmd.Flags().StringVar(&job.Input, "input", def.Input, "Specification file or directory")
	cmd.Flags().StringVar(&job.TypeName, "type", def.Type, "Fully qualified enumeration type, e.g. github.com/acme/ble/gatt.Service")
	cmd.Flags().StringVar(&job.OutputDir, "output", def.Output, "Directory the generated file is written to")
	cmd.Flags().StringVar(&job.MemberPrefix, "prefix", "", "Prefix for every generated constant")
	cmd.Flags().BoolVar(&job.Strict, "strict", false, "Reject short identifiers that are not valid hex")
	cmd.Flags().StringSliceVar(&job.IncludeExtensions, "ext", nil, "Only read files with these extensions from a directory")
	rf.register(cmd)

	return cmd
}

func (a *app) newGenerateAllCommand() *cobra.Command {
	var (
		configPath string
		only       []string
		rf         runFlags
	)

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every job from the config file",
		Long: `Run the jobs defined in gattgen.yaml in order, stopping at the first failure.
Without a config file the built-in services and characteristics jobs are used.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			jobs, err := cfg.ResolvedJobs()
			if err != nil {
				return clierr.Wrap(clierr.ExitUsage, "", err)
			}
			return a.runJobs(cmd, jobs, only, rf)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "Path to the job config file")
	cmd.Flags().StringSliceVar(&only, "only", nil, "Run only the jobs with these IDs")
	rf.register(cmd)

	return cmd
}

func (a *app) runJobs(cmd *cobra.Command, jobs []idgen.Job, only []string, rf runFlags) error {
	gen := &idgen.Generator{Log: a.log}

	mode := runner.ModeGenerate
	if rf.check {
		mode = runner.ModeCheck
	}

	out := cmd.OutOrStdout()
	progress := out
	if rf.asJSON {
		progress = io.Discard
	}
	r := runner.NewRunner(gen, jobs, mode, progress)

	var (
		summary runner.Summary
		err     error
	)
	if len(only) > 0 {
		summary, err = r.RunList(cmd.Context(), only)
	} else {
		summary, err = r.RunAll(cmd.Context())
	}

	if rf.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(summary); encErr != nil && err == nil {
			err = encErr
		}
	}
	return classify(err)
}

// loadConfig reads the config at path. Without an explicit path the default
// file is searched for up to the module root, falling back to the built-in
// jobs; a missing explicit file is an error.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	if !explicit {
		found, ok := projectroot.FindFile(".", path)
		if !ok {
			return config.Default(), nil
		}
		path = found
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, clierr.Wrap(clierr.ExitUsage, "", err)
	}
	return cfg, nil
}

func defaultSpec(kind gattxml.Kind) config.JobSpec {
	for _, spec := range config.Default().Jobs {
		if spec.Kind == string(kind) {
			return spec
		}
	}
	return config.JobSpec{}
}

package cli

import (
	"encoding/json"
	"path/filepath"

	"github.com/spf13/cobra"

	"repowarden/internal/flags"
	"repowarden/internal/precommit"
	"repowarden/internal/repo"
)

var excludeMetricsConfigFile string

var excludeMetricsCmd = &cobra.Command{
	Use:   "exclude-metrics",
	Short: "Print pre-commit exclusion metrics as JSON",
	Long: `Count the files each pre-commit hook excludes and print the tally as JSON.

Hooks without exclusions covering existing files are omitted. The output
feeds dashboards that track how much of the repository is exempt from
each hook.

Examples:
  repowarden exclude-metrics
  repowarden exclude-metrics --config-file ci/precommit.yaml
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pc, err := precommit.Load(filepath.Join(cfg.Target.RepoDir, filepath.FromSlash(excludeMetricsConfigFile)))
		if err != nil {
			return err
		}
		tree, err := repo.Walk(cfg.Target.RepoDir)
		if err != nil {
			return err
		}

		m := precommit.CollectMetrics(pc.HooksWithExcludes(), tree)
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	},
}

func init() {
	rootCmd.AddCommand(excludeMetricsCmd)
	excludeMetricsCmd.Flags().StringVar(&excludeMetricsConfigFile, flags.FlagConfigFile, precommit.ConfigFile, "Pre-commit configuration path relative to the repository root")
}

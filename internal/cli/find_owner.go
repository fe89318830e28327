package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"repowarden/internal/flags"
	"repowarden/internal/ownership"
	"repowarden/internal/repo"
)

var (
	findOwnerLevel     int
	findOwnerRulesFile string
)

var findOwnerCmd = &cobra.Command{
	Use:   "find-owner <path>",
	Short: "Print the owner of a file or folder",
	Long: `Print the owners of an item (file or folder) per the CODEOWNERS rules.

With --level, the owners of the item's children that many levels below
it are listed instead. The repository root is resolved with git; outside
a git checkout, --repo-dir bounds the lookup.

Examples:
  # Who owns this file?
  repowarden find-owner src/planner/route.cpp

  # Owners of every direct child of src
  repowarden find-owner src --level 1
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFindOwner(cmd, args[0])
	},
}

func runFindOwner(cmd *cobra.Command, item string) error {
	abs, err := filepath.Abs(item)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("item %s does not exist; provide a path to an existing file or folder", item)
	}

	itemDir := abs
	if !info.IsDir() {
		itemDir = filepath.Dir(abs)
	}
	root, err := repo.TopLevel(context.Background(), itemDir)
	if err != nil {
		root, err = filepath.Abs(cfg.Target.RepoDir)
		if err != nil {
			return err
		}
	}

	rulesFile, err := ownership.LocateRulesFile(root, findOwnerRulesFile)
	if err != nil {
		return err
	}
	rs, err := ownership.ParseFile(filepath.Join(root, filepath.FromSlash(rulesFile)))
	if err != nil {
		return err
	}

	items, err := subitems(abs, findOwnerLevel)
	if err != nil {
		return err
	}

	type row struct {
		path   string
		owners []string
	}
	rows := make([]row, 0, len(items))
	width := 0
	for _, it := range items {
		rel, err := filepath.Rel(root, it)
		if err != nil {
			return err
		}
		p := repo.Normalize(rel)
		if p == "" {
			// The repository root itself.
			p = "."
		}
		rows = append(rows, row{path: p, owners: ownership.Resolve(rs, p).Owners()})
		if len(p) > width {
			width = len(p)
		}
	}

	for _, r := range rows {
		fmt.Fprintf(cmd.OutOrStdout(), "%-*s -> %s\n", width, r.path, strings.Join(r.owners, ", "))
	}
	return nil
}

// subitems returns the item itself for level 0, or every entry exactly
// level directories below it, sorted.
func subitems(abs string, level int) ([]string, error) {
	if level <= 0 {
		return []string{abs}, nil
	}
	segs := make([]string, level)
	for i := range segs {
		segs[i] = "*"
	}
	matches, err := filepath.Glob(filepath.Join(abs, filepath.Join(segs...)))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

func init() {
	rootCmd.AddCommand(findOwnerCmd)
	findOwnerCmd.Flags().IntVarP(&findOwnerLevel, flags.FlagLevel, "l", 0, "Level/depth to descend into the folder")
	findOwnerCmd.Flags().StringVar(&findOwnerRulesFile, flags.FlagCodeownersFile, "", "Rule file path relative to the repository root (default: .github/CODEOWNERS, then CODEOWNERS)")
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/tablediff/internal/config"
	"github.com/dbsmedya/tablediff/internal/logger"
	"github.com/dbsmedya/tablediff/internal/mapping"
	"github.com/dbsmedya/tablediff/internal/recon"
	"github.com/dbsmedya/tablediff/internal/render"
	"github.com/dbsmedya/tablediff/internal/table"
)

var (
	compareMaps    []string
	compareIgnores []string
	compareOutput  string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two datasets under a column mapping",
	Long: `Compare loads both datasets, finalizes the column mapping, and runs
the reconciliation engine: a full outer join on the mapped key columns with
every output row classified by provenance.

The mapping is seeded from matching column names (mode "all") or taken
verbatim from config and --map flags (mode "custom"). Columns named by
--ignore or the config ignore list are removed from the seeded mapping.

The verdict, summary, and a difference preview go to stdout. With --output,
the (filtered) difference rows are exported as delimited text.

Example:
  tablediff compare --config tablediff.yaml
  tablediff compare --left a.csv --right b.csv --map id=user_id --filter left-only`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringArrayVar(&compareMaps, "map", nil,
		"Add a mapping pair as left=right (repeatable)")
	compareCmd.Flags().StringArrayVar(&compareIgnores, "ignore", nil,
		"Remove a column from the seeded mapping (repeatable)")
	compareCmd.Flags().StringVarP(&compareOutput, "output", "o", "",
		"Export difference rows to this file")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	ctx := context.Background()

	left, err := loadSource(ctx, &cfg.Left, log)
	if err != nil {
		return err
	}
	right, err := loadSource(ctx, &cfg.Right, log)
	if err != nil {
		return err
	}

	session, err := buildSession(cfg, left, right, log)
	if err != nil {
		return err
	}
	m := session.Finalize()
	log.Infow("Mapping finalized", "columns", m.Len(), "revision", session.Version())

	result, err := recon.Compare(left, right, m)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	out := cmd.OutOrStdout()
	render.Verdict(out, result)
	fmt.Fprintln(out)
	render.Summary(out, result, cfg.Left.Name, cfg.Right.Name)

	labels := render.NewLabels(cfg.Left.Name, cfg.Right.Name)
	view := result.Differences
	if p, ok := render.ParseFilter(cfg.Display.Filter); ok {
		view = result.Filter(p)
	}

	if view.RowCount() > 0 {
		fmt.Fprintf(out, "\nDifference rows (%d):\n\n", view.RowCount())
		render.Table(out, view, cfg.Display.Limit, labels)
	} else if !result.Identical {
		fmt.Fprintln(out, "\nNo rows match the selected filter.")
	}

	if compareOutput != "" {
		if err := render.ExportFile(compareOutput, view, cfg.Left.DelimiterRune(), labels); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		log.Infow("Exported difference rows", "path", compareOutput, "rows", view.RowCount())
	}

	// Differing datasets exit non-zero so scripts can branch on the verdict.
	if !result.Identical {
		log.Sync()
		os.Exit(1)
	}
	return nil
}

// buildSession resolves the final column mapping through a versioned edit
// session: seed, config entries, --map overrides, then removals.
func buildSession(cfg *config.Config, left, right *table.Dataset, log *logger.Logger) (*mapping.Session, error) {
	var seed *mapping.Mapping
	if cfg.Display.Mode != "custom" {
		partition := mapping.Match(left.Columns(), right.Columns())
		for _, col := range partition.LeftOnly {
			log.WithColumn(col).Warnw("Column has no match in right dataset")
		}
		for _, col := range partition.RightOnly {
			log.WithColumn(col).Warnw("Column has no match in left dataset")
		}
		seed = mapping.SeedMapping(partition)
	}

	session := mapping.NewSession(seed)
	for _, entry := range cfg.Mapping {
		session.Set(entry.Left, entry.Right)
	}
	for _, pair := range compareMaps {
		l, r, ok := strings.Cut(pair, "=")
		if !ok || l == "" || r == "" {
			return nil, fmt.Errorf("invalid --map value %q, expected left=right", pair)
		}
		session.Set(l, r)
	}
	for _, col := range cfg.Ignore {
		session.RemoveColumn(col)
	}
	for _, col := range compareIgnores {
		session.RemoveColumn(col)
	}
	return session, nil
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/tablediff/internal/logger"
	"github.com/dbsmedya/tablediff/internal/mapping"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Show the column-name partition between the two datasets",
	Long: `Columns loads both datasets and partitions their column names into
matching, left-only, and right-only sets.

Matching names seed the default mapping in compare's "all" mode; the other
two sets flag columns that need a manual --map entry or an --ignore.

Example:
  tablediff columns --config tablediff.yaml`,
	RunE: runColumns,
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}

func runColumns(cmd *cobra.Command, args []string) error {
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

	partition := mapping.Match(left.Columns(), right.Columns())

	cmd.Printf("%s has %d column(s), %s has %d column(s)\n\n",
		cfg.Left.Name, len(left.Columns()), cfg.Right.Name, len(right.Columns()))

	cmd.Printf("Matching columns (%d):\n", len(partition.Matching))
	for _, col := range partition.Matching {
		cmd.Printf("  %s\n", col)
	}

	if len(partition.LeftOnly) > 0 {
		cmd.Printf("\nOnly in %s (%d):\n", cfg.Left.Name, len(partition.LeftOnly))
		for _, col := range partition.LeftOnly {
			cmd.Printf("  %s\n", col)
		}
	}
	if len(partition.RightOnly) > 0 {
		cmd.Printf("\nOnly in %s (%d):\n", cfg.Right.Name, len(partition.RightOnly))
		for _, col := range partition.RightOnly {
			cmd.Printf("  %s\n", col)
		}
	}

	if len(partition.LeftOnly) > 0 || len(partition.RightOnly) > 0 {
		cmd.Println("\nSome columns don't match. Map them with --map or drop them with --ignore.")
	}
	return nil
}

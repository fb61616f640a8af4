// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Jackela/citegraph/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate citation statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	st, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	stats, err := st.Stats(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Printf("citations:       %d\n", stats.Total)
	fmt.Printf("complete:        %d\n", stats.Complete)
	fmt.Printf("avg confidence:  %.2f\n", stats.AvgConfidence)

	if len(stats.ByType) > 0 {
		fmt.Println("\nby type:")
		printBreakdown(stats.ByType)
	}
	if len(stats.ByYear) > 0 {
		fmt.Println("\nby year:")
		years := make([]int, 0, len(stats.ByYear))
		for y := range stats.ByYear {
			years = append(years, y)
		}
		sort.Ints(years)
		for _, y := range years {
			fmt.Printf("  %d: %d\n", y, stats.ByYear[y])
		}
	}
	return nil
}

func printBreakdown(m map[string]int) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-12s %d\n", k, m[k])
	}
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove relations with dangling endpoints",
	Long: `Cleanup deletes relations whose source or resolved target no longer
exists, the remediation path after deleting documents or citations.`,
	RunE: runCleanup,
}

func runCleanup(cmd *cobra.Command, args []string) error {
	st, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	removed, err := st.CleanupOrphans(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("removed %d orphan relation(s)\n", removed)
	return nil
}

func init() {
	statsCmd.Flags().Bool("json", false, "output statistics as JSON")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(cleanupCmd)
}

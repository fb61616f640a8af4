// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jackela/citegraph/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all stored citations to YAML or JSON",
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	st, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	switch format {
	case "yaml", "":
		if out == "" {
			out = "citations.yaml"
		}
		if err := st.ExportYAML(ctx, out); err != nil {
			return err
		}
	case "json":
		if out == "" {
			out = "citations.json"
		}
		if err := st.ExportJSON(ctx, out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	fmt.Printf("Exported to %s\n", out)
	return nil
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().String("out", "", "output path (default: citations.yaml or citations.json)")

	rootCmd.AddCommand(exportCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jackela/citegraph/internal/extract"
	"github.com/Jackela/citegraph/internal/store"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract citations from registered documents",
	Long: `Parse runs the rule-based extraction pipeline over document text and
stores the resulting citations, replacing any previous extraction.

With --doc a single document is parsed; otherwise every registered
document is processed, in parallel. With --external the configured
extraction service provides primary candidates and the rule-based
cascade fills gaps; when the service is unreachable parsing degrades to
rules only.`,
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	docID, _ := cmd.Flags().GetInt64("doc")
	useExternal, _ := cmd.Flags().GetBool("external")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	st, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	cfg := extractionConfig()
	var external extract.ExternalExtractor
	if svc := extract.NewServiceExtractor(cfg.External); svc != nil {
		external = svc
	}
	parser := extract.NewParser(external)

	ctx := context.Background()

	if docID > 0 {
		doc, err := st.GetDocument(ctx, docID)
		if err != nil {
			return err
		}
		if doc == nil {
			return fmt.Errorf("document %d not found", docID)
		}

		citations := parser.Parse(ctx, doc.ID, doc.Content, useExternal)
		if err := st.ReplaceDocumentCitations(ctx, doc.ID, citations); err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(citations)
		}
		fmt.Printf("parsed  doc-%d (%d citations)\n", doc.ID, len(citations))
		return nil
	}

	summary, err := extract.ParseAll(ctx, parser, st, st, cfg, useExternal, os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d document(s) failed parsing", summary.Failed)
	}
	return nil
}

func init() {
	parseCmd.Flags().Int64("doc", 0, "parse a single document by id")
	parseCmd.Flags().Bool("external", false, "use the configured extraction service as primary source")
	parseCmd.Flags().Bool("json", false, "print citations as JSON (single document only)")

	rootCmd.AddCommand(parseCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jackela/citegraph/internal/store"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [files...]",
	Short: "Register plain-text documents in the citation store",
	Long: `Ingest registers one document per text file. The text must already be
extracted from its source format; citegraph never decodes PDFs or other
binary formats. The document title defaults to the file name, or use
--title when ingesting a single file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	if title != "" && len(args) > 1 {
		return fmt.Errorf("--title only applies when ingesting a single file")
	}

	st, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		docTitle := title
		if docTitle == "" {
			docTitle = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}

		doc, err := st.CreateDocument(ctx, docTitle, string(data))
		if err != nil {
			return err
		}
		fmt.Printf("ingested doc-%d %q (%d bytes)\n", doc.ID, doc.Title, len(doc.Content))
	}
	return nil
}

func init() {
	ingestCmd.Flags().String("title", "", "document title (single file only; default: file name)")

	rootCmd.AddCommand(ingestCmd)
}

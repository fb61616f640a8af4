// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jackela/citegraph/internal/store"
	"github.com/Jackela/citegraph/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search stored citations",
	Long: `Search queries the citation store by author substring, title
full-text match, exact DOI, or publication-year range. Exactly one of
--author, --title, --doi, or --year-from/--year-to must be given.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	author, _ := cmd.Flags().GetString("author")
	title, _ := cmd.Flags().GetString("title")
	doi, _ := cmd.Flags().GetString("doi")
	yearFrom, _ := cmd.Flags().GetInt("year-from")
	yearTo, _ := cmd.Flags().GetInt("year-to")
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	st, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	var citations []types.Citation

	switch {
	case author != "":
		citations, err = st.SearchByAuthor(ctx, author, limit)
	case title != "":
		citations, err = st.SearchByTitle(ctx, title, limit)
	case doi != "":
		citations, err = st.FindByDOI(ctx, doi)
	case yearFrom != 0 || yearTo != 0:
		if yearFrom == 0 {
			yearFrom = types.MinYear
		}
		if yearTo == 0 {
			yearTo = types.MaxYear
		}
		citations, err = st.FindByYearRange(ctx, yearFrom, yearTo, limit)
	default:
		return fmt.Errorf("query required: provide --author, --title, --doi, or a year range")
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(citations)
	}

	if len(citations) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Printf("%-6s  %-8s  %-20s  %-6s  %-5s  %s\n", "ID", "Doc", "Author", "Year", "Conf", "Title")
	for _, c := range citations {
		author := c.Author
		if len(author) > 20 {
			author = author[:17] + "..."
		}
		title := c.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		year := ""
		if c.Year != 0 {
			year = fmt.Sprintf("%d", c.Year)
		}
		fmt.Printf("%-6d  doc-%-4d  %-20s  %-6s  %-5.2f  %s\n",
			c.ID, c.DocumentID, author, year, c.Confidence, title)
	}
	fmt.Printf("\n%d results\n", len(citations))
	return nil
}

func init() {
	searchCmd.Flags().String("author", "", "author substring, case-insensitive")
	searchCmd.Flags().String("title", "", "title full-text query")
	searchCmd.Flags().String("doi", "", "exact DOI")
	searchCmd.Flags().Int("year-from", 0, "start of publication-year range")
	searchCmd.Flags().Int("year-to", 0, "end of publication-year range")
	searchCmd.Flags().Int("limit", 0, "maximum results (0 = store default)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

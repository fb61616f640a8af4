// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Jackela/citegraph/internal/link"
	"github.com/Jackela/citegraph/internal/store"
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Resolve citations into cross-document relations",
	Long: `Link matches every titled citation against the other registered
documents' titles and records a "cites" relation for each match above
the similarity threshold. Running link again only adds relations for new
matches.`,
	RunE: runLink,
}

func runLink(cmd *cobra.Command, args []string) error {
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	if threshold == 0 {
		threshold = viper.GetFloat64("link.threshold")
	}

	st, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	_, err = link.Run(context.Background(), st, threshold, os.Stdout)
	return err
}

func init() {
	linkCmd.Flags().Float64("threshold", 0, "minimum title similarity in (0,1] (default 0.5)")

	rootCmd.AddCommand(linkCmd)
}

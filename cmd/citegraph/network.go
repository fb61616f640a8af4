// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Jackela/citegraph/internal/network"
	"github.com/Jackela/citegraph/internal/store"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Build and inspect the citation network around a document",
	Long: `Network traverses stored relations outward from a start document,
following both citations made and citations received, up to --depth
(between 1 and 3). It prints the nodes, edges, and graph metrics.`,
	RunE: runNetwork,
}

// networkResult is the JSON shape for the network command.
type networkResult struct {
	Graph   *network.Graph  `json:"graph"`
	Metrics network.Metrics `json:"metrics"`
}

func runNetwork(cmd *cobra.Command, args []string) error {
	startID, _ := cmd.Flags().GetInt64("start")
	depth, _ := cmd.Flags().GetInt("depth")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if depth == 0 {
		depth = viper.GetInt("network.max_depth")
	}
	if depth == 0 {
		depth = 2
	}

	st, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	g, err := network.NewBuilder(st).Build(context.Background(), startID, depth)
	if err != nil {
		return err
	}
	metrics := network.ComputeMetrics(g)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(networkResult{Graph: g, Metrics: metrics})
	}

	printGraph(g, metrics)
	return nil
}

func printGraph(g *network.Graph, m network.Metrics) {
	fmt.Printf("network from doc-%d: %d nodes, %d edges, density %.3f\n\n",
		g.StartID, m.NodeCount, m.EdgeCount, m.Density)

	ids := make([]int64, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		node := g.Nodes[id]
		marker := " "
		if id == g.StartID {
			marker = "*"
		}
		fmt.Printf("%s doc-%-6d in:%-3d out:%-3d %s\n",
			marker, node.DocumentID, node.InDegree, node.OutDegree, node.Title)
	}

	if m.EdgeCount > 0 {
		fmt.Printf("\nedge confidence: mean %.2f, min %.2f, max %.2f, high (>=0.8): %d\n",
			m.Confidence.Mean, m.Confidence.Min, m.Confidence.Max, m.Confidence.HighCount)
	}
	if !m.Temporal.Earliest.IsZero() {
		fmt.Printf("ingested between %s and %s (%d distinct days)\n",
			m.Temporal.Earliest.Format("2006-01-02"),
			m.Temporal.Latest.Format("2006-01-02"),
			m.Temporal.DistinctDates)
	}
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank documents by citation influence",
	Long: `Rank builds the network around a start document and scores each node
by weighted degree: citations received count 2.0, citations made 0.5.
The ten most influential documents are printed in descending order.`,
	RunE: runRank,
}

func runRank(cmd *cobra.Command, args []string) error {
	startID, _ := cmd.Flags().GetInt64("start")
	depth, _ := cmd.Flags().GetInt("depth")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if depth == 0 {
		depth = viper.GetInt("network.max_depth")
	}
	if depth == 0 {
		depth = 2
	}

	st, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	g, err := network.NewBuilder(st).Build(context.Background(), startID, depth)
	if err != nil {
		return err
	}
	ranked := network.RankInfluence(g)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ranked)
	}

	fmt.Printf("%-4s  %-10s  %-6s  %-6s  %-7s  %s\n", "Rank", "Document", "In", "Out", "Score", "Title")
	for i, r := range ranked {
		fmt.Printf("%-4d  doc-%-6d  %-6d  %-6d  %-7.1f  %s\n",
			i+1, r.DocumentID, r.InDegree, r.OutDegree, r.Score, r.Title)
	}
	return nil
}

var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "Detect citation clusters across the collection",
	Long: `Clusters finds groups of documents mutually reachable through
relations treated as undirected. Groups smaller than --min-size are
omitted.`,
	RunE: runClusters,
}

func runClusters(cmd *cobra.Command, args []string) error {
	minSize, _ := cmd.Flags().GetInt("min-size")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if minSize == 0 {
		minSize = viper.GetInt("network.min_cluster_size")
	}

	st, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	clusters, err := network.DetectClusters(context.Background(), st, minSize)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(clusters)
	}

	if len(clusters) == 0 {
		fmt.Println("No clusters found.")
		return nil
	}
	for i, c := range clusters {
		fmt.Printf("cluster %d: %d documents, %d internal edges\n  docs: %v\n",
			i+1, c.Size, c.InternalEdges, c.DocumentIDs)
	}
	return nil
}

func init() {
	networkCmd.Flags().Int64("start", 0, "start document id (required)")
	networkCmd.Flags().Int("depth", 0, "traversal depth, 1-3 (default 2)")
	networkCmd.Flags().Bool("json", false, "output graph and metrics as JSON")
	networkCmd.MarkFlagRequired("start")

	rankCmd.Flags().Int64("start", 0, "start document id (required)")
	rankCmd.Flags().Int("depth", 0, "traversal depth, 1-3 (default 2)")
	rankCmd.Flags().Bool("json", false, "output ranking as JSON")
	rankCmd.MarkFlagRequired("start")

	clustersCmd.Flags().Int("min-size", 0, "minimum cluster size (default 3)")
	clustersCmd.Flags().Bool("json", false, "output clusters as JSON")

	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(clustersCmd)
}

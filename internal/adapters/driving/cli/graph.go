package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	graphFilters     filterFlags
	graphAuthors     int
	graphCommunities int
	graphStatsOnly   bool
	graphJSON        bool
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Author-community interaction network",
	Long: `Builds the bipartite interaction network between the most active
authors and the busiest communities in the filtered corpus, then
renders it together with its structural statistics.`,
	RunE: runGraph,
}

func init() {
	graphFilters.register(graphCmd)
	graphCmd.Flags().IntVar(&graphAuthors, "authors", 15, "number of top authors to include")
	graphCmd.Flags().IntVar(&graphCommunities, "communities", 10, "number of top communities to include")
	graphCmd.Flags().BoolVar(&graphStatsOnly, "stats", false, "print statistics only, skip the drawing")
	graphCmd.Flags().BoolVar(&graphJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, _ []string) error {
	if analyticsService == nil {
		return errors.New("analytics service not configured")
	}

	posts, err := graphFilters.filteredPosts(cmd)
	if err != nil {
		return err
	}

	g := analyticsService.InteractionGraph(posts, graphAuthors, graphCommunities)
	stats := analyticsService.GraphStats(g)

	if graphJSON {
		out := map[string]any{"graph": g, "stats": stats}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal graph: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if !graphStatsOnly && graphRenderer != nil {
		rendered, err := graphRenderer.Render(g)
		if err != nil {
			// Fall back to the statistics table below.
			cmd.Printf("Warning: graph rendering failed: %v\n\n", err)
		} else {
			cmd.Println(rendered)
		}
	}

	cmd.Println("Network Statistics")
	cmd.Println("==================")
	cmd.Printf("  Nodes:                %d\n", stats.Nodes)
	cmd.Printf("  Edges:                %d\n", stats.Edges)
	cmd.Printf("  Density:              %.3f\n", stats.Density)
	cmd.Printf("  Connected Components: %d\n", stats.ConnectedComponents)
	cmd.Printf("  Avg Clustering:       %.3f\n", stats.AvgClustering)

	return nil
}

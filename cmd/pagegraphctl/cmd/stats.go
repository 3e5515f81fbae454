// File: stats.go
// Role: `pagegraphctl stats` — node/edge counts and dangling-node count.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valtrix-labs/pagegraph/graph"
	"github.com/valtrix-labs/pagegraph/graphml"
)

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Print node count, edge count, and dangling-node count",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	path := args[0]

	g := graph.New(0)
	if err := graphml.Load(path, g); err != nil {
		return err
	}

	dangling := g.DanglingNodes()
	fmt.Printf("nodes: %d\nedges: %d\ndangling: %d\n", g.NumNodes(), g.NumEdges(), len(dangling))
	log.WithField("dangling_nodes", dangling).Debug("computed dangling set")

	return nil
}

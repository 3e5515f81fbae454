// File: load.go
// Role: `pagegraphctl load` — parse a GraphML file and report its size.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valtrix-labs/pagegraph/graph"
	"github.com/valtrix-labs/pagegraph/graphml"
)

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Parse a GraphML or GraphMLZ file and print its node/edge counts",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	path := args[0]
	log.WithField("path", path).Debug("loading graph")

	g := graph.New(0)
	if err := graphml.Load(path, g); err != nil {
		return err
	}

	fmt.Printf("nodes: %d\nedges: %d\n", g.NumNodes(), g.NumEdges())

	return nil
}

// File: convert.go
// Role: `pagegraphctl convert` — round-trip between .graphml and .graphmlz.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/valtrix-labs/pagegraph/graph"
	"github.com/valtrix-labs/pagegraph/graphml"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a graph between .graphml and .graphmlz",
	Args:  cobra.ExactArgs(2),
	RunE:  runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]
	log.WithField("in", in).WithField("out", out).Info("converting graph")

	g := graph.New(0)
	if err := graphml.Load(in, g); err != nil {
		return err
	}

	return graphml.Save(out, g)
}

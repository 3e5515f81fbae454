// File: pagerank.go
// Role: `pagegraphctl pagerank` — load a graph, run PageRank, print scores.
package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valtrix-labs/pagegraph/graph"
	"github.com/valtrix-labs/pagegraph/graphml"
)

var personalizeFlags []string

var pagerankCmd = &cobra.Command{
	Use:   "pagerank <file>",
	Short: "Run PageRank over a GraphML graph and print a name->score table",
	Args:  cobra.ExactArgs(1),
	RunE:  runPageRank,
}

func init() {
	// Flag defaults mirror initConfig's viper.SetDefault calls in root.go;
	// they can't read from viper directly here since cobra.OnInitialize
	// runs initConfig later, after every package-level init.
	pagerankCmd.Flags().Float64("alpha", 0.85, "damping factor")
	pagerankCmd.Flags().Int("max-iter", 100, "maximum power-iteration steps")
	pagerankCmd.Flags().Float64("tol", 1e-6, "L1 convergence tolerance")
	pagerankCmd.Flags().StringArrayVar(&personalizeFlags, "personalize", nil, "name=weight personalization entry, repeatable")
}

func runPageRank(cmd *cobra.Command, args []string) error {
	path := args[0]

	g := graph.New(0)
	if err := graphml.Load(path, g); err != nil {
		return err
	}

	alpha, _ := cmd.Flags().GetFloat64("alpha")
	maxIter, _ := cmd.Flags().GetInt("max-iter")
	tol, _ := cmd.Flags().GetFloat64("tol")
	if !cmd.Flags().Changed("alpha") {
		alpha = viper.GetFloat64("alpha")
	}
	if !cmd.Flags().Changed("max-iter") {
		maxIter = viper.GetInt("max_iter")
	}
	if !cmd.Flags().Changed("tol") {
		tol = viper.GetFloat64("tol")
	}

	opts := []graph.PageRankOption{
		graph.WithAlpha(alpha),
		graph.WithMaxIter(maxIter),
		graph.WithTol(tol),
	}

	if len(personalizeFlags) > 0 {
		personalization, err := parsePersonalization(personalizeFlags)
		if err != nil {
			return err
		}
		opts = append(opts, graph.WithPersonalization(personalization))
	}

	log.WithField("alpha", alpha).WithField("max_iter", maxIter).Debug("running pagerank")

	scores, err := g.RunPageRank(opts...)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return scores[names[i]] > scores[names[j]] })

	for _, name := range names {
		fmt.Printf("%s\t%.6f\n", name, scores[name])
	}

	return nil
}

// parsePersonalization parses "name=weight" entries into a map, rejecting
// malformed entries or weights that don't parse as float64.
func parsePersonalization(entries []string) (map[string]float64, error) {
	out := make(map[string]float64, len(entries))
	for _, entry := range entries {
		name, raw, found := strings.Cut(entry, "=")
		if !found {
			return nil, fmt.Errorf("pagegraphctl: invalid --personalize entry %q, want name=weight", entry)
		}
		weight, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("pagegraphctl: invalid weight in --personalize entry %q: %w", entry, err)
		}
		out[name] = weight
	}

	return out, nil
}

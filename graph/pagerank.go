// File: pagerank.go
// Role: name-keyed PageRank facade over package pagerank's dense kernel —
//       functional options, vector normalization, and index<->name
//       translation.
package graph

import "github.com/valtrix-labs/pagegraph/pagerank"

const (
	defaultAlpha   = 0.85
	defaultMaxIter = 100
	defaultTol     = 1e-6
)

// pageRankConfig collects the optional inputs to RunPageRank before they
// are normalized into dense vectors.
type pageRankConfig struct {
	initScore       map[string]float64
	personalization map[string]float64
	danglingWeight  map[string]float64
	danglingSet     bool
	alpha           float64
	maxIter         int
	tol             float64
}

// PageRankOption configures a RunPageRank call.
type PageRankOption func(*pageRankConfig)

// WithInitScore supplies the starting distribution, keyed by node name.
// Names absent from the graph are ignored; names present in the graph but
// absent from the map start at 0 before normalization. If omitted, every
// node starts with equal mass.
func WithInitScore(scores map[string]float64) PageRankOption {
	return func(c *pageRankConfig) { c.initScore = scores }
}

// WithPersonalization supplies the teleport target distribution, keyed by
// node name. If omitted, every node is weighted equally (uniform
// teleportation, the classical PageRank default).
func WithPersonalization(weights map[string]float64) PageRankOption {
	return func(c *pageRankConfig) { c.personalization = weights }
}

// WithDanglingWeight supplies the redistribution target for dangling
// nodes' mass, keyed by node name. If omitted, it defaults to the
// (post-normalization) personalization vector, per the classical
// convention that dangling mass teleports the same way undirected
// teleportation does.
func WithDanglingWeight(weights map[string]float64) PageRankOption {
	return func(c *pageRankConfig) {
		c.danglingWeight = weights
		c.danglingSet = true
	}
}

// WithAlpha sets the damping factor. Default 0.85.
func WithAlpha(alpha float64) PageRankOption {
	return func(c *pageRankConfig) { c.alpha = alpha }
}

// WithMaxIter caps the number of power-iteration steps. Default 100.
func WithMaxIter(maxIter int) PageRankOption {
	return func(c *pageRankConfig) { c.maxIter = maxIter }
}

// WithTol sets the L1 convergence tolerance (scaled by node count inside
// the kernel — see package pagerank). Default 1e-6.
func WithTol(tol float64) PageRankOption {
	return func(c *pageRankConfig) { c.tol = tol }
}

// RunPageRank computes PageRank over the graph's current node set and
// returns scores keyed by node name. It compacts the node table first
// (CompactNodeArray), so any previously held raw indices are invalidated;
// callers interact with this method purely through names.
//
// A non-nil distribution map that sums to zero is rejected with
// ErrInvalidInput rather than silently producing NaN through division by
// zero. An empty graph returns an empty score map without invoking the
// kernel.
func (g *Graph) RunPageRank(opts ...PageRankOption) (map[string]float64, error) {
	cfg := pageRankConfig{
		alpha:   defaultAlpha,
		maxIter: defaultMaxIter,
		tol:     defaultTol,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	g.CompactNodeArray()
	n := g.store.SlotCount()
	if n == 0 {
		return map[string]float64{}, nil
	}

	init, err := g.normalizeNamed(cfg.initScore, uniform(n))
	if err != nil {
		return nil, err
	}
	personalization, err := g.normalizeNamed(cfg.personalization, uniform(n))
	if err != nil {
		return nil, err
	}

	var dangling []float64
	if cfg.danglingSet {
		dangling, err = g.normalizeNamed(cfg.danglingWeight, uniform(n))
		if err != nil {
			return nil, err
		}
	} else {
		dangling = make([]float64, n)
		copy(dangling, personalization)
	}

	res, err := pagerank.Run(g.store, init, personalization, dangling, cfg.alpha, cfg.maxIter, cfg.tol)
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64, n)
	for idx, score := range res.Scores {
		name, ok := g.reg.NameOf(idx)
		if !ok {
			continue
		}
		out[name] = score
	}

	return out, nil
}

// DanglingNodes returns the name of every node with zero total outgoing
// edge weight — the set PageRank treats as a rank sink and redistributes
// mass from. Order matches NodeList (sorted).
func (g *Graph) DanglingNodes() []string {
	var out []string
	for _, name := range g.reg.Names() {
		idx, _ := g.reg.IndexOf(name)
		sum := 0.0
		g.store.WalkOut(idx, func(_ int, weight float64) bool {
			sum += weight
			return true
		})
		if sum == 0 {
			out = append(out, name)
		}
	}

	return out
}

// uniform returns a length-n vector with each entry 1/n, the fallback
// distribution used whenever a caller omits init/personalization.
func uniform(n int) []float64 {
	v := make([]float64, n)
	mass := 1.0 / float64(n)
	for i := range v {
		v[i] = mass
	}
	return v
}

// normalizeNamed converts a name-keyed weight map into a dense,
// SlotCount()-length vector summing to 1. Names not bound in the
// registry are skipped rather than rejected, so callers may reuse one
// map across graphs that only partially overlap. A nil named map falls
// back to fallback (already normalized). A non-nil map whose included
// names sum to zero mass is rejected with ErrInvalidInput.
func (g *Graph) normalizeNamed(named map[string]float64, fallback []float64) ([]float64, error) {
	if named == nil {
		return fallback, nil
	}

	n := g.store.SlotCount()
	raw := make([]float64, n)
	total := 0.0
	for name, weight := range named {
		idx, ok := g.reg.IndexOf(name)
		if !ok {
			continue
		}
		raw[idx] = weight
		total += weight
	}
	if total == 0 {
		return nil, ErrInvalidInput
	}

	for i := range raw {
		raw[i] /= total
	}

	return raw, nil
}

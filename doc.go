// Package pagegraph is an in-memory named directed multigraph with a
// PageRank kernel built for that graph's dense index space.
//
// Under the hood, the library is organized into four layers:
//
//	core/     — the adjacency store: an arena of node/edge records linked
//	            by doubly-linked chains, indexed by dense integer ids
//	registry/ — bidirectional name<->index bookkeeping and an edge
//	            presence set, keyed by the caller-visible string names
//	pagerank/ — personalization- and dangling-aware power-iteration
//	            PageRank over a compacted core.Store
//	graph/    — the name-keyed facade callers use day to day: it owns
//	            node/edge attribute dictionaries the lower layers never
//	            see, and translates RunPageRank's named distributions into
//	            the dense vectors the kernel expects
//
// A fifth layer, graphml/, loads and saves graphs in the GraphML wire
// format, and cmd/pagegraphctl is a thin CLI over the whole stack.
//
// pagegraph is not safe for concurrent mutation; see package core's doc
// comment for the single-threaded ownership model this library assumes
// throughout.
package pagegraph

// Package pagerank implements a personalization- and dangling-aware
// power-iteration PageRank over a github.com/valtrix-labs/pagegraph/core
// adjacency store.
//
// Run operates directly on the store's dense index space and three
// caller-supplied probability vectors (initial scores, personalization,
// dangling redistribution); it does not know about node names, GraphML,
// or attributes — those are the concern of package graph, the facade that
// translates name-keyed requests into the vectors Run expects.
//
// The kernel is single-threaded and allocates exactly one result vector
// per call; ownership of that vector transfers to the caller.
package pagerank

// Package core provides the adjacency store underlying pagegraph: a dense,
// arena-backed representation of a directed multigraph keyed by integer
// node indices.
//
// The store owns two arenas — a node table and an edge arena — and links
// every edge into two doubly linked chains: one over all edges sharing its
// source, one over all edges sharing its destination. Both chains are
// headed at the node and spliced in O(1); no sentinel nodes are used, an
// empty chain is simply a null head.
//
// Node indices are stable between compactions: AddNode always appends,
// never reuses a slot vacated by RemoveNode. This lets callers hold onto a
// node index (e.g. a PageRank vector position) across mutations, at the
// cost of a possibly sparse node table. CompactNodes rewrites the table so
// live nodes occupy 0..NumNodes()-1, invalidating any index held from
// before the call.
//
// Edge slots, unlike node slots, are recycled: a removed edge's arena slot
// is pushed onto a free list and reused by the next AddEdge, since nothing
// outside the store is expected to hold a raw edge index across calls.
//
// core is deliberately not safe for concurrent mutation: callers own a
// Store exclusively and serialize their own access. See package graph
// for the name-keyed facade built on top of this store.
package core

// Package graph is the name-keyed facade over package core's adjacency
// store and package registry's name<->index bookkeeping (component F of
// the design).
//
// Graph is the type most callers interact with directly: it accepts and
// returns user-visible string identifiers, owns node/edge attribute
// dictionaries that neither the adjacency store nor the PageRank kernel
// read or require, and translates RunPageRank's name-keyed distributions
// into the dense vectors package pagerank expects.
//
// Graph is not safe for concurrent mutation — see package core's doc
// comment for the shared single-threaded ownership model this library
// assumes throughout.
package graph

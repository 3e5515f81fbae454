// Package registry maintains the bidirectional mapping between
// user-visible string names and the dense integer node indices that
// package core's adjacency store operates on, plus a set recording which
// (src, dst) name pairs currently have an edge.
//
// Registry validates duplicate-add and missing-remove conditions before
// the caller (package graph) touches the adjacency store, so that a
// rejected mutation never leaves the store and the registry out of sync
// with each other.
package registry

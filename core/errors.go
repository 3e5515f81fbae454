// File: errors.go
// Role: sentinel errors for the core adjacency store.
//
// Error policy: only package-level sentinels are exposed. Callers branch
// on semantics with errors.Is; sentinels are never wrapped with formatted
// text at the definition site.
package core

import "errors"

var (
	// ErrUnknownEndpoint indicates AddEdge referenced a node index that is
	// not live (out of range, or vacated by RemoveNode). This signals an
	// inconsistency between a caller's index bookkeeping and the store —
	// it should not occur if the store's invariants hold.
	ErrUnknownEndpoint = errors.New("core: unknown endpoint")

	// ErrDuplicateEdge indicates AddEdge(src, dst, ...) was called while an
	// edge between the same ordered pair already exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrEdgeNotFound indicates RemoveEdge or GetEdge referenced a pair
	// with no existing edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNodeNotFound indicates RemoveNode or GetNode referenced an index
	// that is out of range or already vacant.
	ErrNodeNotFound = errors.New("core: node not found")
)

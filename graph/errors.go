// File: errors.go
// Role: sentinel errors surfaced by the facade. Node/edge lifecycle
// sentinels are the registry's own sentinels, re-exported here so callers
// need only import package graph.
package graph

import (
	"errors"

	"github.com/valtrix-labs/pagegraph/core"
	"github.com/valtrix-labs/pagegraph/registry"
)

var (
	// ErrNodeExists is returned by AddNode for a name already present.
	ErrNodeExists = registry.ErrNodeExists

	// ErrNodeMissing is returned by UpdateNode/RemoveNode/GetNode for an
	// unbound name.
	ErrNodeMissing = registry.ErrNodeMissing

	// ErrEdgeExists is returned by AddEdge for a (src, dst) pair already
	// present.
	ErrEdgeExists = registry.ErrEdgeExists

	// ErrEdgeMissing is returned by UpdateEdge/RemoveEdge/GetEdge for an
	// unrecorded (src, dst) pair.
	ErrEdgeMissing = registry.ErrEdgeMissing

	// ErrUnknownEndpoint signals an inconsistency between the registry and
	// the adjacency store; it should never occur if the facade's
	// invariants hold.
	ErrUnknownEndpoint = core.ErrUnknownEndpoint

	// ErrAttributeMissing is returned when indexing an attribute key that
	// was never set on a node or edge.
	ErrAttributeMissing = errors.New("graph: attribute not found")

	// ErrInvalidInput is returned by RunPageRank when a caller-supplied
	// distribution is non-nil but sums to zero, which would otherwise
	// divide by zero during normalization.
	ErrInvalidInput = errors.New("graph: distribution sums to zero")
)

// File: errors.go
// Role: sentinel errors for the name registry.
package registry

import "errors"

var (
	// ErrNodeExists indicates AddNode was called with a name already bound
	// to a node index.
	ErrNodeExists = errors.New("registry: node already exists")

	// ErrNodeMissing indicates an operation referenced a name with no
	// bound node index.
	ErrNodeMissing = errors.New("registry: node not found")

	// ErrEdgeExists indicates AddEdge was called for a (src, dst) pair
	// already recorded as present.
	ErrEdgeExists = errors.New("registry: edge already exists")

	// ErrEdgeMissing indicates an operation referenced a (src, dst) pair
	// with no recorded edge.
	ErrEdgeMissing = errors.New("registry: edge not found")
)

// File: types.go
// Role: facade type declarations — Graph, and the read-only views/specs
// exchanged across its public API.
package graph

import (
	"github.com/valtrix-labs/pagegraph/core"
	"github.com/valtrix-labs/pagegraph/registry"
)

// edgeKey identifies an edge by endpoint names, used to key the facade's
// out-of-core edge attribute map.
type edgeKey struct {
	src string
	dst string
}

// NodeView is a read-only handle to one node's name and attributes,
// returned by GetNode. Mutating the returned map does not affect the
// graph; use UpdateNode to change attributes.
type NodeView struct {
	Name  string
	attrs map[string]interface{}
}

// Attr returns the value stored under key, or ErrAttributeMissing if key
// was never set.
func (v NodeView) Attr(key string) (interface{}, error) {
	val, ok := v.attrs[key]
	if !ok {
		return nil, ErrAttributeMissing
	}
	return val, nil
}

// Attrs returns a copy of the node's attribute dictionary.
func (v NodeView) Attrs() map[string]interface{} {
	return cloneAttrs(v.attrs)
}

// EdgeView is a read-only handle to one edge's endpoints, weight, and
// attributes, returned by GetEdge.
type EdgeView struct {
	Src    string
	Dst    string
	Weight float64
	attrs  map[string]interface{}
}

// Attr returns the value stored under key, or ErrAttributeMissing if key
// was never set.
func (v EdgeView) Attr(key string) (interface{}, error) {
	val, ok := v.attrs[key]
	if !ok {
		return nil, ErrAttributeMissing
	}
	return val, nil
}

// Attrs returns a copy of the edge's attribute dictionary.
func (v EdgeView) Attrs() map[string]interface{} {
	return cloneAttrs(v.attrs)
}

// NodeSpec describes one node for AddNodesFrom.
type NodeSpec struct {
	Name  string
	Attrs map[string]interface{}
}

// EdgeSpec describes one edge for AddEdgesFrom. Weight accepts any
// numeric Go type or nil; nil (or an absent field) defaults to 0.0, and
// non-float numeric values are coerced to float64 (see coerceWeight).
type EdgeSpec struct {
	Src    string
	Dst    string
	Weight interface{}
	Attrs  map[string]interface{}
}

// Graph is the name-keyed facade: it composes a *core.Store, a
// *registry.Registry, and facade-local attribute dictionaries the store
// and registry never see.
type Graph struct {
	store *core.Store
	reg   *registry.Registry

	nodeAttrs map[string]map[string]interface{}
	edgeAttrs map[edgeKey]map[string]interface{}
}

// New returns an empty Graph. capacityHint is forwarded to the underlying
// adjacency store as a node-table size hint (see core.NewStore).
func New(capacityHint int) *Graph {
	return &Graph{
		store:     core.NewStore(capacityHint),
		reg:       registry.New(),
		nodeAttrs: make(map[string]map[string]interface{}),
		edgeAttrs: make(map[edgeKey]map[string]interface{}),
	}
}

func cloneAttrs(src map[string]interface{}) map[string]interface{} {
	if src == nil {
		return map[string]interface{}{}
	}
	out := make(map[string]interface{}, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// File: edges.go
// Role: edge lifecycle and queries — AddEdge/AddEdgesFrom, UpdateEdge,
//       RemoveEdge, GetEdge, ContainsEdge, EdgeList, weight coercion.
package graph

import "fmt"

// AddEdge binds (src, dst) with the given weight and attrs, auto-creating
// either endpoint (with empty attributes) if it is not already bound.
// Fails with ErrEdgeExists if (src, dst) is already recorded; the
// existence check runs before any node is auto-created, so a rejected
// call never mutates the graph.
//
// Complexity: O(out-degree(src)).
func (g *Graph) AddEdge(src, dst string, weight float64, attrs map[string]interface{}) error {
	if err := g.reg.CheckEdgeAvailable(src, dst); err != nil {
		return err
	}

	if !g.reg.Contains(src) {
		if err := g.AddNode(src, nil); err != nil {
			return err
		}
	}
	if !g.reg.Contains(dst) {
		if err := g.AddNode(dst, nil); err != nil {
			return err
		}
	}

	srcIdx, _ := g.reg.IndexOf(src)
	dstIdx, _ := g.reg.IndexOf(dst)
	if err := g.store.AddEdge(srcIdx, dstIdx, weight); err != nil {
		return err
	}

	g.reg.Mark(src, dst)
	g.edgeAttrs[edgeKey{src, dst}] = cloneAttrs(attrs)

	return nil
}

// AddEdgesFrom applies AddEdge for each spec in order, stopping and
// returning the first error encountered. Like AddNodesFrom, this is a
// bulk convenience and not a single atomic operation.
func (g *Graph) AddEdgesFrom(specs []EdgeSpec) error {
	for _, spec := range specs {
		weight, err := coerceWeight(spec.Weight)
		if err != nil {
			return err
		}
		if err := g.AddEdge(spec.Src, spec.Dst, weight, spec.Attrs); err != nil {
			return err
		}
	}

	return nil
}

// coerceWeight converts a caller-supplied weight value to float64. A nil
// value defaults to 0.0. Integer and float types of any width are
// coerced losslessly for the ranges PageRank weights occupy in practice;
// any other type is rejected.
func coerceWeight(w interface{}) (float64, error) {
	switch v := w.(type) {
	case nil:
		return 0.0, nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("graph: unsupported weight type %T", w)
	}
}

// UpdateEdge overwrites the weight and attribute dictionary of the
// existing edge (src, dst). Fails with ErrEdgeMissing if the edge is not
// recorded.
//
// Complexity: O(out-degree(src)).
func (g *Graph) UpdateEdge(src, dst string, weight float64, attrs map[string]interface{}) error {
	if err := g.reg.CheckEdgePresent(src, dst); err != nil {
		return err
	}
	srcIdx, _ := g.reg.IndexOf(src)
	dstIdx, _ := g.reg.IndexOf(dst)
	if err := g.store.UpdateEdgeWeight(srcIdx, dstIdx, weight); err != nil {
		return ErrUnknownEndpoint
	}
	g.edgeAttrs[edgeKey{src, dst}] = cloneAttrs(attrs)

	return nil
}

// RemoveEdge unbinds (src, dst) and drops its attribute dictionary. Fails
// with ErrEdgeMissing if the edge is not recorded.
//
// Complexity: O(out-degree(src)).
func (g *Graph) RemoveEdge(src, dst string) error {
	if err := g.reg.CheckEdgePresent(src, dst); err != nil {
		return err
	}
	srcIdx, _ := g.reg.IndexOf(src)
	dstIdx, _ := g.reg.IndexOf(dst)
	if err := g.store.RemoveEdge(srcIdx, dstIdx); err != nil {
		return ErrUnknownEndpoint
	}
	g.reg.Unmark(src, dst)
	delete(g.edgeAttrs, edgeKey{src, dst})

	return nil
}

// GetEdge returns a read-only view of the edge (src, dst). Fails with
// ErrEdgeMissing if the edge is not recorded.
func (g *Graph) GetEdge(src, dst string) (EdgeView, error) {
	if err := g.reg.CheckEdgePresent(src, dst); err != nil {
		return EdgeView{}, err
	}
	srcIdx, _ := g.reg.IndexOf(src)
	dstIdx, _ := g.reg.IndexOf(dst)
	e, err := g.store.GetEdge(srcIdx, dstIdx)
	if err != nil {
		return EdgeView{}, ErrUnknownEndpoint
	}

	return EdgeView{
		Src:    src,
		Dst:    dst,
		Weight: e.Weight,
		attrs:  g.edgeAttrs[edgeKey{src, dst}],
	}, nil
}

// ContainsEdge reports whether (src, dst) is recorded.
func (g *Graph) ContainsEdge(src, dst string) bool {
	return g.reg.HasEdge(src, dst)
}

// EdgeList returns every recorded edge as a (src, dst) pair, sorted
// lexicographically.
func (g *Graph) EdgeList() [][2]string {
	return g.reg.Edges()
}

// NumEdges returns the number of recorded edges.
func (g *Graph) NumEdges() int {
	return g.store.NumEdges()
}

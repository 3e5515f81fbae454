// File: graphml_adapter.go
// Role: thin read-only accessors that let *Graph satisfy package
//       graphml's Source interface without exposing NodeView/EdgeView
//       (whose Attr/Attrs methods return a copy already, but whose
//       concrete type graphml has no reason to depend on).
package graph

// NodeAttrs returns a copy of name's attribute dictionary, or an empty map
// if name is not bound. Unlike GetNode, this never fails — callers that already
// have name from NodeList know it is bound.
func (g *Graph) NodeAttrs(name string) map[string]interface{} {
	return cloneAttrs(g.nodeAttrs[name])
}

// EdgeWeight returns the weight of edge (src, dst), or 0 if it is not
// recorded. Callers that already have (src, dst) from EdgeList know it
// is recorded.
func (g *Graph) EdgeWeight(src, dst string) float64 {
	view, err := g.GetEdge(src, dst)
	if err != nil {
		return 0
	}
	return view.Weight
}

// EdgeAttrs returns a copy of (src, dst)'s attribute dictionary, or an
// empty map if the edge is not recorded.
func (g *Graph) EdgeAttrs(src, dst string) map[string]interface{} {
	return cloneAttrs(g.edgeAttrs[edgeKey{src, dst}])
}

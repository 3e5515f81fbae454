// File: maintenance.go
// Role: whole-graph lifecycle operations outside the node/edge CRUD path.
package graph

// Clear empties the graph: no nodes, no edges, no attributes. Afterwards
// the Graph is equivalent to one just returned by New(0).
func (g *Graph) Clear() {
	g.store.Clear()
	g.reg.Clear()
	g.nodeAttrs = make(map[string]map[string]interface{})
	g.edgeAttrs = make(map[edgeKey]map[string]interface{})
}

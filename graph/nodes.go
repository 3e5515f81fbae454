// File: nodes.go
// Role: node lifecycle and queries — AddNode/AddNodesFrom, UpdateNode,
//       RemoveNode, GetNode, Contains, NodeList, CompactNodeArray.
package graph

// AddNode binds name to a freshly created node and records attrs as its
// attribute dictionary (a nil attrs is treated as empty). Fails with
// ErrNodeExists if name is already bound, without touching the adjacency
// store.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string, attrs map[string]interface{}) error {
	if err := g.reg.CheckNodeAvailable(name); err != nil {
		return err
	}

	idx := g.store.AddNode()
	g.reg.Bind(name, idx)
	g.nodeAttrs[name] = cloneAttrs(attrs)

	return nil
}

// AddNodesFrom applies AddNode for each spec in order, stopping and
// returning the first error encountered. Specs preceding the failure
// remain applied — this is a bulk convenience, not a single atomic
// operation (see AddNode for the atomicity contract of one node add).
func (g *Graph) AddNodesFrom(specs []NodeSpec) error {
	for _, spec := range specs {
		if err := g.AddNode(spec.Name, spec.Attrs); err != nil {
			return err
		}
	}

	return nil
}

// UpdateNode replaces name's attribute dictionary with attrs. Fails with
// ErrNodeMissing if name is not bound.
//
// Complexity: O(1).
func (g *Graph) UpdateNode(name string, attrs map[string]interface{}) error {
	if err := g.reg.CheckNodePresent(name); err != nil {
		return err
	}
	g.nodeAttrs[name] = cloneAttrs(attrs)

	return nil
}

// RemoveNode unbinds name, cascades to every edge incident to it (in the
// adjacency store and in the facade's edge-attribute map), and drops its
// attribute dictionary. Fails with ErrNodeMissing if name is not bound.
//
// Complexity: O(out-degree(name) + in-degree(name) + E) — the last term
// from scanning edge attributes for incident entries.
func (g *Graph) RemoveNode(name string) error {
	if err := g.reg.CheckNodePresent(name); err != nil {
		return err
	}
	idx, _ := g.reg.IndexOf(name)

	if err := g.store.RemoveNode(idx); err != nil {
		return ErrUnknownEndpoint
	}

	g.reg.UnmarkAllFrom(name)
	g.reg.Unbind(name)
	delete(g.nodeAttrs, name)
	for k := range g.edgeAttrs {
		if k.src == name || k.dst == name {
			delete(g.edgeAttrs, k)
		}
	}

	return nil
}

// GetNode returns a read-only view of name's attributes. Fails with
// ErrNodeMissing if name is not bound.
func (g *Graph) GetNode(name string) (NodeView, error) {
	if err := g.reg.CheckNodePresent(name); err != nil {
		return NodeView{}, err
	}

	return NodeView{Name: name, attrs: g.nodeAttrs[name]}, nil
}

// Contains reports whether name is bound to a node.
func (g *Graph) Contains(name string) bool {
	return g.reg.Contains(name)
}

// NodeList returns every bound node name, sorted for deterministic
// output.
func (g *Graph) NodeList() []string {
	return g.reg.Names()
}

// NumNodes returns the number of live nodes.
func (g *Graph) NumNodes() int {
	return g.reg.Len()
}

// CompactNodeArray rewrites the adjacency store's node table so live
// nodes occupy a contiguous prefix, then re-keys the name registry to
// match. It is a no-op if the table is already dense. Callers that plan
// to hold onto raw indices should not do so across this call; RunPageRank
// calls it automatically.
//
// Complexity: O(V + E).
func (g *Graph) CompactNodeArray() {
	mapping := g.store.CompactNodes()
	g.reg.RebuildAfterCompaction(mapping)
}

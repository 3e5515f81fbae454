// File: types.go
// Role: the narrow Source/Sink interfaces the codec requires of a graph,
// and the key-id bookkeeping shared by Save and Load.
package graphml

import "strconv"

// Source is read by Save. *graph.Graph satisfies it directly; any other
// type exposing the same five read-only views does too.
type Source interface {
	NodeList() []string
	NodeAttrs(name string) map[string]interface{}
	EdgeList() [][2]string
	EdgeWeight(src, dst string) float64
	EdgeAttrs(src, dst string) map[string]interface{}
}

// Sink is populated by Load. *graph.Graph satisfies it directly via its
// existing AddNode/AddEdge methods.
type Sink interface {
	AddNode(name string, attrs map[string]interface{}) error
	AddEdge(src, dst string, weight float64, attrs map[string]interface{}) error
}

// weightAttrName is the reserved attribute name under which every edge's
// weight is emitted, distinct from any attribute the facade itself
// tracks (weight is a first-class field of core.Edge, never stored in
// the facade's edge-attribute map).
const weightAttrName = "weight"

// keyRef identifies one distinct (attr_name, for_scope) pair observed
// during Save.
type keyRef struct {
	scope string // "node" or "edge"
	name  string
}

// keyTable assigns synthetic ids (d0, d1, ...) to keyRefs in first-seen
// order, and records each one's declared attribute type for key-element
// emission.
type keyTable struct {
	ids   map[keyRef]string
	order []keyRef
	types map[keyRef]string
}

func newKeyTable() *keyTable {
	return &keyTable{
		ids:   make(map[keyRef]string),
		types: make(map[keyRef]string),
	}
}

// idFor returns the id for (scope, name), assigning a fresh one the
// first time this pair is seen and recording attrType for later
// key-element emission.
func (kt *keyTable) idFor(scope, name, attrType string) string {
	ref := keyRef{scope: scope, name: name}
	if id, ok := kt.ids[ref]; ok {
		return id
	}

	id := "d" + strconv.Itoa(len(kt.order))
	kt.ids[ref] = id
	kt.types[ref] = attrType
	kt.order = append(kt.order, ref)

	return id
}

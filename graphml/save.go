// File: save.go
// Role: Save serializes a Source to a .graphml or .graphmlz file.
package graphml

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"sort"

	"github.com/klauspost/compress/gzip"
)

// Save writes src to path in the format implied by its extension
// (".graphml" for plain XML, ".graphmlz" for gzip-compressed XML).
// Nodes and edges are emitted in the order src.NodeList()/src.EdgeList()
// return them; each node or edge's attributes are emitted in sorted key
// order, so two Save calls over an unchanged graph produce byte-identical
// output. Fails with ErrUnsupportedFormat for any other extension.
func Save(path string, src Source) error {
	compressed, err := formatFor(path)
	if err != nil {
		return err
	}

	doc := buildDocument(src)

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	out := append([]byte(xml.Header), body...)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if !compressed {
		_, err = f.Write(out)
		return err
	}

	gw := gzip.NewWriter(f)
	if _, err := gw.Write(out); err != nil {
		gw.Close()
		return err
	}
	return gw.Close()
}

// formatFor reports whether path names a compressed (.graphmlz) file, or
// ErrUnsupportedFormat if its extension is neither GraphML form.
func formatFor(path string) (compressed bool, err error) {
	switch filepath.Ext(path) {
	case ".graphml":
		return false, nil
	case ".graphmlz":
		return true, nil
	default:
		return false, ErrUnsupportedFormat
	}
}

func buildDocument(src Source) xmlDocument {
	kt := newKeyTable()

	names := src.NodeList()
	nodes := make([]xmlNode, 0, len(names))
	for _, name := range names {
		attrs := src.NodeAttrs(name)
		nodes = append(nodes, xmlNode{ID: name, Data: emitAttrs(kt, "node", attrs)})
	}

	pairs := src.EdgeList()
	edges := make([]xmlEdge, 0, len(pairs))
	for _, pair := range pairs {
		src2, dst := pair[0], pair[1]
		weight := src.EdgeWeight(src2, dst)
		attrs := src.EdgeAttrs(src2, dst)

		data := make([]xmlData, 0, len(attrs)+1)
		wType, wText := attrTypeAndString(weight)
		data = append(data, xmlData{Key: kt.idFor("edge", weightAttrName, wType), Value: wText})
		data = append(data, emitAttrs(kt, "edge", attrs)...)

		edges = append(edges, xmlEdge{Source: src2, Target: dst, Data: data})
	}

	keys := make([]xmlKey, 0, len(kt.order))
	for _, ref := range kt.order {
		keys = append(keys, xmlKey{
			ID:       kt.ids[ref],
			For:      ref.scope,
			AttrName: ref.name,
			AttrType: kt.types[ref],
		})
	}

	return xmlDocument{
		Xmlns: graphmlNamespace,
		Keys:  keys,
		Graph: xmlGraph{
			EdgeDefault: "directed",
			Nodes:       nodes,
			Edges:       edges,
		},
	}
}

// emitAttrs renders attrs as xmlData entries in sorted key order,
// assigning or reusing key ids in kt under the given scope. weightAttrName
// is skipped here since Save emits it separately for edges, ahead of the
// caller's own attributes.
func emitAttrs(kt *keyTable, scope string, attrs map[string]interface{}) []xmlData {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if scope == "edge" && k == weightAttrName {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]xmlData, 0, len(keys))
	for _, k := range keys {
		attrType, text := attrTypeAndString(attrs[k])
		out = append(out, xmlData{Key: kt.idFor(scope, k, attrType), Value: text})
	}

	return out
}

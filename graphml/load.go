// File: load.go
// Role: Load parses a .graphml or .graphmlz file and populates a Sink.
package graphml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Load reads path, decodes it as GraphML, and populates dst via
// AddNode/AddEdge in document order (nodes before edges, matching the
// schema's own ordering). It does not clear dst first — callers pass a
// freshly constructed graph.
//
// Fails with ErrFileNotFound if path does not exist, ErrUnsupportedFormat
// for an extension that is neither ".graphml" nor ".graphmlz", or
// ErrMalformedGraphML if the document does not parse, its root element is
// not graphml in the declared namespace, or a node or edge references a
// data key that was never declared.
func Load(path string, dst Sink) error {
	compressed, err := formatFor(path)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrFileNotFound
		}
		return err
	}

	if compressed {
		raw, err = decompress(raw)
		if err != nil {
			return err
		}
	}

	var doc xmlDocument
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return ErrMalformedGraphML
	}
	if doc.Xmlns != graphmlNamespace {
		return ErrMalformedGraphML
	}

	types := make(map[string]string, len(doc.Keys))
	names := make(map[string]string, len(doc.Keys))
	for _, k := range doc.Keys {
		types[k.ID] = k.AttrType
		names[k.ID] = k.AttrName
	}

	for _, n := range doc.Graph.Nodes {
		attrs, err := decodeAttrs(n.Data, types, names, "")
		if err != nil {
			return err
		}
		if err := dst.AddNode(n.ID, attrs); err != nil {
			return err
		}
	}

	for _, e := range doc.Graph.Edges {
		attrs, err := decodeAttrs(e.Data, types, names, weightAttrName)
		if err != nil {
			return err
		}
		weight := 0.0
		for _, d := range e.Data {
			name, ok := names[d.Key]
			if !ok {
				return ErrMalformedGraphML
			}
			if name == weightAttrName {
				v, err := parseAttrValue(types[d.Key], d.Value)
				if err != nil {
					return err
				}
				f, ok := v.(float64)
				if !ok {
					return ErrMalformedGraphML
				}
				weight = f
			}
		}
		if err := dst.AddEdge(e.Source, e.Target, weight, attrs); err != nil {
			return err
		}
	}

	return nil
}

// decodeAttrs resolves each data entry's key id and decodes its value,
// skipping the entry named skip (used to pull weight out of an edge's
// data separately). Fails with ErrMalformedGraphML if a data entry
// references a key id absent from the document's <key> declarations.
func decodeAttrs(data []xmlData, types, names map[string]string, skip string) (map[string]interface{}, error) {
	attrs := make(map[string]interface{}, len(data))
	for _, d := range data {
		name, ok := names[d.Key]
		if !ok {
			return nil, ErrMalformedGraphML
		}
		if name == skip {
			continue
		}
		v, err := parseAttrValue(types[d.Key], d.Value)
		if err != nil {
			return nil, err
		}
		attrs[name] = v
	}

	return attrs, nil
}

func decompress(raw []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrMalformedGraphML
	}
	defer gr.Close()

	out, err := io.ReadAll(gr)
	if err != nil {
		return nil, ErrMalformedGraphML
	}

	return out, nil
}

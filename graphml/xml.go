// File: xml.go
// Role: the GraphML XML element structs and the int/float/str attribute
// value codec.
package graphml

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// graphmlNamespace is the declared xmlns of a conforming document. Save
// always writes it; Load rejects any document that doesn't round-trip
// it back.
const graphmlNamespace = "http://graphml.graphdrawing.org/xmlns"

type xmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

type xmlNode struct {
	ID   string    `xml:"id,attr"`
	Data []xmlData `xml:"data"`
}

type xmlEdge struct {
	Source string    `xml:"source,attr"`
	Target string    `xml:"target,attr"`
	Data   []xmlData `xml:"data"`
}

type xmlGraph struct {
	EdgeDefault string    `xml:"edgedefault,attr"`
	Nodes       []xmlNode `xml:"node"`
	Edges       []xmlEdge `xml:"edge"`
}

type xmlKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
	AttrType string `xml:"attr.type,attr"`
}

type xmlDocument struct {
	XMLName xml.Name `xml:"graphml"`
	Xmlns   string   `xml:"xmlns,attr"`
	Keys    []xmlKey `xml:"key"`
	Graph   xmlGraph `xml:"graph"`
}

// attrTypeAndString classifies v into one of GraphML's three declared
// attribute types and renders it as text. Integer-kinded values become
// "int", float-kinded values become "float", and everything else is
// rendered with fmt and tagged "str".
func attrTypeAndString(v interface{}) (attrType, text string) {
	switch n := v.(type) {
	case int:
		return "int", strconv.FormatInt(int64(n), 10)
	case int8:
		return "int", strconv.FormatInt(int64(n), 10)
	case int16:
		return "int", strconv.FormatInt(int64(n), 10)
	case int32:
		return "int", strconv.FormatInt(int64(n), 10)
	case int64:
		return "int", strconv.FormatInt(n, 10)
	case uint:
		return "int", strconv.FormatUint(uint64(n), 10)
	case uint8:
		return "int", strconv.FormatUint(uint64(n), 10)
	case uint16:
		return "int", strconv.FormatUint(uint64(n), 10)
	case uint32:
		return "int", strconv.FormatUint(uint64(n), 10)
	case uint64:
		return "int", strconv.FormatUint(n, 10)
	case float32:
		return "float", strconv.FormatFloat(float64(n), 'g', -1, 64)
	case float64:
		return "float", strconv.FormatFloat(n, 'g', -1, 64)
	default:
		return "str", fmt.Sprintf("%v", v)
	}
}

// parseAttrValue converts text back to a Go value per attrType. An
// unrecognized attrType is treated as "str", matching §6's "any other
// name -> string" rule. Ints decode to int64 and floats to float64,
// regardless of the original Go width written by attrTypeAndString.
func parseAttrValue(attrType, text string) (interface{}, error) {
	switch attrType {
	case "int":
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedGraphML, err)
		}
		return n, nil
	case "float":
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedGraphML, err)
		}
		return f, nil
	default:
		return text, nil
	}
}

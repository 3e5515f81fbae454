// Package graphml loads and saves graphs in the GraphML wire format
// (component G of the design), against narrow Source/Sink interfaces
// rather than a concrete graph type — *graph.Graph satisfies both.
//
// Two file forms are supported: plain UTF-8 XML (.graphml) and
// gzip-compressed XML (.graphmlz), selected by filename extension.
// Attribute values round-trip through three declared types (int, float,
// str); keys are assigned synthetic ids (d0, d1, ...) in first-seen
// order during Save and resolved back to attribute names during Load.
package graphml

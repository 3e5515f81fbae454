// File: errors.go
// Role: sentinel errors for the GraphML codec.
package graphml

import "errors"

var (
	// ErrFileNotFound is returned by Load when the path does not exist.
	// Other read failures are returned as the underlying os error.
	ErrFileNotFound = errors.New("graphml: file not found")

	// ErrUnsupportedFormat is returned when a path's extension is neither
	// ".graphml" nor ".graphmlz".
	ErrUnsupportedFormat = errors.New("graphml: unsupported file extension")

	// ErrMalformedGraphML is returned when the document cannot be parsed
	// as XML, its root element is not graphml in the declared namespace,
	// or a node or edge references a data key that was never declared.
	// Edge endpoints that were never declared as nodes are not rejected.
	ErrMalformedGraphML = errors.New("graphml: malformed document")
)

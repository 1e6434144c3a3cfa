// Package diagram extracts and compares persistence diagrams from a pair
// of dual banana trees (up-tree and down-tree built over the same
// sample sequence).
package diagram

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("bananatree.diagram")
}

// Package sample provides a concrete doubly-linked list of function
// samples implementing bananatree.Item, the external contract the
// banana-tree core requires of its input sequence. Neither spec.md nor
// the core specifies this representation; it exists so the core can be
// constructed and tested end to end.
package sample

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("bananatree.sample")
}

// Package orderdict provides an ordered dictionary keyed by interval
// order, shaped after jba-btree's Key/Item/BTree API but backed by a
// sorted slice rather than a full B-tree: this package only ever holds
// the samples of one construction pass, so a balanced-tree's amortized
// guarantees buy nothing a binary search over a slice doesn't already
// give at this scale. It supplements, rather than replaces, the
// doubly-linked sample.Item sequence bananatree.Construct scans
// directly: callers that need random point/range lookups by order
// during preprocessing can build one of these alongside the sequence.
package orderdict

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("bananatree.orderdict")
}

// Package bananatree implements the banana tree, a pointer-linked structure
// that maintains the persistence diagram of a one-dimensional piecewise
// linear function sampled over an ordered doubly-linked list.
//
// A function over such a list gives rise to two dual trees: the up-tree
// (sign=Up), tracking sublevel-set persistence, and the down-tree
// (sign=Down), tracking superlevel-set persistence. Both are instances of
// the same Tree type, parameterized at construction time by a Sign.
package bananatree

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("bananatree")
}

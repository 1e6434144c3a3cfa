// Package pool implements a small generic recycling object pool, the Go
// counterpart of the original banana-tree implementation's
// recycling_object_pool<T>. Go's garbage collector gives pointers
// stability for free, so unlike the C++ original this pool exists purely
// to cut down on allocator churn and to catch use-after-free via a
// generation counter, not to work around pointer invalidation.
package pool

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("bananatree.pool")
}

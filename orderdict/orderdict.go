package orderdict

import "sort"

// Key is anything orderable by interval order, mirroring jba-btree's
// Key interface.
type Key interface {
	// Less reports whether this key sorts strictly before than.
	Less(than Key) bool
}

// Value is the payload stored alongside a Key.
type Value interface{}

// Item is a key-value pair, as returned by Ascend/AscendRange.
type Item struct {
	Key   Key
	Value Value
}

// Dict is an ordered dictionary keyed by Key, kept as a slice sorted by
// Less. Degree is accepted for API parity with jba-btree's New(degree)
// and checked to be at least 2, but otherwise unused: there is no
// node-fanout to tune in a sorted slice.
type Dict struct {
	items []Item
}

// New creates an empty dictionary. It panics if degree is less than 2;
// otherwise degree has no effect.
func New(degree int) *Dict {
	if degree <= 1 {
		panic("orderdict: bad degree")
	}
	return &Dict{}
}

func (d *Dict) search(key Key) (index int, found bool) {
	n := len(d.items)
	i := sort.Search(n, func(i int) bool { return !d.items[i].Key.Less(key) })
	if i < n && !key.Less(d.items[i].Key) {
		return i, true
	}
	return i, false
}

// Set inserts or updates the value for key, returning the previous
// value and whether one existed.
func (d *Dict) Set(key Key, value Value) (old Value, present bool) {
	i, found := d.search(key)
	if found {
		old = d.items[i].Value
		d.items[i].Value = value
		return old, true
	}
	d.items = append(d.items, Item{})
	copy(d.items[i+1:], d.items[i:])
	d.items[i] = Item{Key: key, Value: value}
	tracer().Debugf("orderdict: inserted key at index %d, len now %d", i, len(d.items))
	return nil, false
}

// Get returns the value stored under key, or nil if absent.
func (d *Dict) Get(key Key) Value {
	if i, found := d.search(key); found {
		return d.items[i].Value
	}
	return nil
}

// Has reports whether key is present.
func (d *Dict) Has(key Key) bool {
	_, found := d.search(key)
	return found
}

// Delete removes key and returns its value, or nil if absent.
func (d *Dict) Delete(key Key) Value {
	i, found := d.search(key)
	if !found {
		return nil
	}
	v := d.items[i].Value
	d.items = append(d.items[:i], d.items[i+1:]...)
	return v
}

// Len returns the number of entries.
func (d *Dict) Len() int { return len(d.items) }

// Min returns the smallest key and its value, or (nil, nil) if empty.
func (d *Dict) Min() (Key, Value) {
	if len(d.items) == 0 {
		return nil, nil
	}
	return d.items[0].Key, d.items[0].Value
}

// Max returns the largest key and its value, or (nil, nil) if empty.
func (d *Dict) Max() (Key, Value) {
	if len(d.items) == 0 {
		return nil, nil
	}
	last := d.items[len(d.items)-1]
	return last.Key, last.Value
}

// ItemIterator is called for each item during a traversal; returning
// false stops the traversal early.
type ItemIterator func(Item) bool

// Ascend calls iterator for every item in increasing key order.
func (d *Dict) Ascend(iterator ItemIterator) {
	for _, it := range d.items {
		if !iterator(it) {
			return
		}
	}
}

// Descend calls iterator for every item in decreasing key order.
func (d *Dict) Descend(iterator ItemIterator) {
	for i := len(d.items) - 1; i >= 0; i-- {
		if !iterator(d.items[i]) {
			return
		}
	}
}

// AscendRange calls iterator for every item with key in
// [greaterOrEqual, lessThan), in increasing order.
func (d *Dict) AscendRange(greaterOrEqual, lessThan Key, iterator ItemIterator) {
	start, _ := d.search(greaterOrEqual)
	for i := start; i < len(d.items); i++ {
		if !d.items[i].Key.Less(lessThan) {
			return
		}
		if !iterator(d.items[i]) {
			return
		}
	}
}

package hashset

import "iter"

// Iterator is a forward cursor over a Set. The zero value is not usable.
//
// Keys are visited bucket by bucket; inside a bucket the most recently
// inserted key comes first. The end position is the sentinel of the last
// non-empty bucket.
type Iterator[K comparable] struct {
	current *node[K]
	table   []*chain[K]
	index   int
}

// Key returns the key at the current position. It panics at the end position.
func (it Iterator[K]) Key() K {
	if it.current == it.table[it.index].tail {
		panic("hashset: Key called on end iterator")
	}
	return it.current.key
}

// Next moves to the following key, crossing into later buckets as needed.
// Once the end position is reached Next does nothing.
func (it *Iterator[K]) Next() {
	tail := it.table[it.index].tail
	if it.current == tail {
		return
	}
	if it.current.next != tail {
		it.current = it.current.next
		return
	}

	for i := it.index + 1; i < len(it.table); i++ {
		if !it.table[i].empty() {
			it.current = it.table[i].head
			it.index = i
			return
		}
	}
	it.current = tail
}

// Equal reports whether both iterators point at the same node.
func (it Iterator[K]) Equal(other Iterator[K]) bool {
	return it.current == other.current
}

// Begin returns an iterator at the first key, equal to End() on an empty set.
func (s *Set[K]) Begin() Iterator[K] {
	for i, c := range s.table {
		if !c.empty() {
			return Iterator[K]{current: c.head, table: s.table, index: i}
		}
	}
	return Iterator[K]{current: s.table[0].head, table: s.table}
}

// End returns the past-the-end iterator.
func (s *Set[K]) End() Iterator[K] {
	for i := len(s.table) - 1; i >= 0; i-- {
		if !s.table[i].empty() {
			return Iterator[K]{current: s.table[i].tail, table: s.table, index: i}
		}
	}
	return Iterator[K]{current: s.table[0].tail, table: s.table}
}

// All returns an iterator over every key in Begin..End order. The set must
// not be modified during the loop.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it, end := s.Begin(), s.End(); !it.Equal(end); it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Keys returns the keys in iteration order.
func (s *Set[K]) Keys() []K {
	keys := make([]K, 0, s.size)
	for key := range s.All() {
		keys = append(keys, key)
	}
	return keys
}

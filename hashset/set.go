// Package hashset implements an unordered set backed by a separately chained
// hash table. Every bucket is a singly linked list terminated by its own
// sentinel node, which lets an Iterator walk a chain and step across buckets
// without special casing nil.
//
// A Set is NOT goroutine-safe.
package hashset

import (
	"go.uber.org/zap"
	"iter"
)

const (
	DefaultBuckets = 32
	// MaxLoadFactor is the number of keys per bucket an insertion may not exceed.
	MaxLoadFactor = 3
	// GrowthFactor multiplies the bucket count on every rehash.
	GrowthFactor = 5
)

// Set is a collection of unique keys.
type Set[K comparable] struct {
	table   []*chain[K]
	size    int
	buckets int // bucket count of a freshly constructed set
	hash    Hasher[K]
	logger  *zap.Logger
}

// New returns an empty set with DefaultBuckets buckets unless overridden.
func New[K comparable](opts ...Option[K]) *Set[K] {
	s := &Set[K]{
		buckets: DefaultBuckets,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.hash == nil {
		s.hash = defaultHasher[K]()
	}
	s.table = newTable[K](s.buckets)
	return s
}

// NewFromKeys returns a set holding the distinct keys of keys.
func NewFromKeys[K comparable](keys []K, opts ...Option[K]) *Set[K] {
	s := New(opts...)
	s.InsertKeys(keys...)
	return s
}

// NewFromRange returns a set holding the keys in [first, last).
func NewFromRange[K comparable](first, last Iterator[K], opts ...Option[K]) *Set[K] {
	s := New(opts...)
	s.InsertRange(first, last)
	return s
}

// NewFromSeq returns a set holding the keys yielded by seq.
func NewFromSeq[K comparable](seq iter.Seq[K], opts ...Option[K]) *Set[K] {
	s := New(opts...)
	s.InsertSeq(seq)
	return s
}

func (s *Set[K]) hashIndex(key K) int {
	return int(s.hash(key) % uint64(len(s.table)))
}

// Size returns the number of keys.
func (s *Set[K]) Size() int {
	return s.size
}

// Empty returns true if the set holds no key.
func (s *Set[K]) Empty() bool {
	return s.size == 0
}

// Buckets returns the current bucket count.
func (s *Set[K]) Buckets() int {
	return len(s.table)
}

// LoadFactor returns the average number of keys per bucket.
func (s *Set[K]) LoadFactor() float64 {
	return float64(s.size) / float64(len(s.table))
}

// Contains reports whether key is in the set.
func (s *Set[K]) Contains(key K) bool {
	_, ok := s.table[s.hashIndex(key)].lookup(key)
	return ok
}

// Count returns 1 if key is in the set and 0 otherwise.
func (s *Set[K]) Count(key K) int {
	if s.Contains(key) {
		return 1
	}
	return 0
}

// Find returns an iterator positioned at key, or End() if key is absent.
func (s *Set[K]) Find(key K) Iterator[K] {
	idx := s.hashIndex(key)
	if n, ok := s.table[idx].lookup(key); ok {
		return Iterator[K]{current: n, table: s.table, index: idx}
	}
	return s.End()
}

// Insert adds key unless it is already present. It returns an iterator to the
// stored key and whether an insertion took place. An insertion may rehash the
// table, which invalidates every outstanding iterator.
func (s *Set[K]) Insert(key K) (Iterator[K], bool) {
	idx := s.hashIndex(key)
	if n, ok := s.table[idx].lookup(key); ok {
		return Iterator[K]{current: n, table: s.table, index: idx}, false
	}
	n, idx := s.insertUnchecked(key)
	return Iterator[K]{current: n, table: s.table, index: idx}, true
}

// InsertKeys adds every key not yet present.
func (s *Set[K]) InsertKeys(keys ...K) {
	for _, key := range keys {
		if !s.Contains(key) {
			s.insertUnchecked(key)
		}
	}
}

// InsertRange adds the keys in [first, last), typically the Begin/End pair
// of another set.
func (s *Set[K]) InsertRange(first, last Iterator[K]) {
	for it := first; !it.Equal(last); it.Next() {
		if key := it.Key(); !s.Contains(key) {
			s.insertUnchecked(key)
		}
	}
}

// InsertSeq adds every key yielded by seq that is not yet present.
func (s *Set[K]) InsertSeq(seq iter.Seq[K]) {
	for key := range seq {
		if !s.Contains(key) {
			s.insertUnchecked(key)
		}
	}
}

// insertUnchecked grows the table if one more key would exceed the load
// factor, then prepends key to its chain. key must not be present.
func (s *Set[K]) insertUnchecked(key K) (*node[K], int) {
	if s.size+1 > len(s.table)*MaxLoadFactor {
		s.rehash()
	}
	idx := s.hashIndex(key)
	n := s.table[idx].prepend(key)
	s.size++
	return n, idx
}

func (s *Set[K]) rehash() {
	keys := make([]K, 0, s.size)
	for key := range s.All() {
		keys = append(keys, key)
	}

	old := len(s.table)
	releaseTable(s.table)
	s.table = newTable[K](old * GrowthFactor)
	s.size = 0

	for _, key := range keys {
		s.insertUnchecked(key)
	}

	s.logger.Debug("rehash",
		zap.Int("old_buckets", old),
		zap.Int("new_buckets", len(s.table)),
		zap.Int("size", s.size))
}

// Erase removes key and returns the number of keys removed, 0 or 1.
func (s *Set[K]) Erase(key K) int {
	if !s.table[s.hashIndex(key)].remove(key) {
		return 0
	}
	s.size--
	return 1
}

// Clear removes every key. The bucket count is kept.
func (s *Set[K]) Clear() {
	releaseTable(s.table)
	s.table = newTable[K](len(s.table))
	s.size = 0
}

// Swap exchanges the contents of s and other without touching any node.
func (s *Set[K]) Swap(other *Set[K]) {
	s.table, other.table = other.table, s.table
	s.size, other.size = other.size, s.size
	// the hasher addresses the table it was filled with
	s.hash, other.hash = other.hash, s.hash
	s.buckets, other.buckets = other.buckets, s.buckets
}

// Clone returns a deep copy built on a freshly constructed table.
func (s *Set[K]) Clone() *Set[K] {
	c := New(WithBuckets[K](s.buckets), WithHasher(s.hash), WithLogger[K](s.logger))
	c.InsertRange(s.Begin(), s.End())
	return c
}

// Assign replaces the contents of s with the keys of other.
func (s *Set[K]) Assign(other *Set[K]) {
	if s == other {
		return
	}
	s.Clear()
	s.InsertRange(other.Begin(), other.End())
}

// AssignKeys replaces the contents of s with keys.
func (s *Set[K]) AssignKeys(keys ...K) {
	s.Clear()
	s.InsertKeys(keys...)
}

// Equal reports whether both sets hold the same keys, regardless of their
// iteration order.
func (s *Set[K]) Equal(other *Set[K]) bool {
	if s.size != other.size {
		return false
	}
	for key := range s.All() {
		if !other.Contains(key) {
			return false
		}
	}
	return true
}

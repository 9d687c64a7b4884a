package hashset

import (
	"go.uber.org/zap"
	"hash/maphash"
)

// Hasher maps a key to its hash value. Keys that compare equal must hash
// to the same value.
type Hasher[K comparable] func(key K) uint64

type Option[K comparable] func(s *Set[K])

// WithBuckets sets the initial bucket count. Values below 1 keep DefaultBuckets.
func WithBuckets[K comparable](n int) Option[K] {
	return func(s *Set[K]) {
		if n > 0 {
			s.buckets = n
		}
	}
}

// WithHasher replaces the default maphash based hasher.
func WithHasher[K comparable](h Hasher[K]) Option[K] {
	return func(s *Set[K]) {
		if h != nil {
			s.hash = h
		}
	}
}

// WithLogger makes the set report rehashes at debug level.
func WithLogger[K comparable](logger *zap.Logger) Option[K] {
	return func(s *Set[K]) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func defaultHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

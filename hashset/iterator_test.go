package hashset

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIteratorEmptySet(t *testing.T) {
	s := New[int]()
	begin, end := s.Begin(), s.End()
	assert.True(t, begin.Equal(end))

	end.Next()
	assert.True(t, begin.Equal(end), "advancing end stays at end")
	assert.Panics(t, func() { end.Key() })
	assert.Empty(t, s.Keys())
}

func TestIteratorOrder(t *testing.T) {
	// bucket 1: 9 5 1, bucket 2: 6, bucket 3: 3
	s := newIntSet(WithBuckets[int](4))
	s.InsertKeys(1, 5, 3, 6, 9)

	var got []int
	for it, end := s.Begin(), s.End(); !it.Equal(end); it.Next() {
		got = append(got, it.Key())
	}
	assert.Equal(t, []int{9, 5, 1, 6, 3}, got)
	assert.Equal(t, got, s.Keys())
}

func TestIteratorSkipsEmptyBuckets(t *testing.T) {
	s := newIntSet(WithBuckets[int](10))
	s.InsertKeys(2, 7)

	it := s.Begin()
	assert.Equal(t, 2, it.Key())
	it.Next()
	assert.Equal(t, 7, it.Key())
	it.Next()
	assert.True(t, it.Equal(s.End()))
}

func TestIteratorEndIsLastBucketSentinel(t *testing.T) {
	s := newIntSet(WithBuckets[int](8))
	s.InsertKeys(1, 3)

	end := s.End()
	assert.Same(t, s.table[3].tail, end.current)
	assert.Equal(t, 3, end.index)

	s.Erase(3)
	assert.Same(t, s.table[1].tail, s.End().current)

	s.Erase(1)
	assert.True(t, s.Begin().Equal(s.End()))
	assert.Same(t, s.table[0].tail, s.End().current)
}

func TestIteratorFromFind(t *testing.T) {
	s := newIntSet(WithBuckets[int](4))
	s.InsertKeys(0, 4, 1, 2)

	it := s.Find(4)
	var rest []int
	for end := s.End(); !it.Equal(end); it.Next() {
		rest = append(rest, it.Key())
	}
	assert.Equal(t, []int{4, 0, 1, 2}, rest)
}

func TestAllStopsEarly(t *testing.T) {
	s := NewFromKeys([]int{1, 2, 3, 4, 5})
	n := 0
	for range s.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestIterationVisitsEveryKeyOnce(t *testing.T) {
	s := New[string]()
	want := map[string]bool{}
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		s.Insert(k)
		want[k] = true
	}

	seen := map[string]int{}
	for k := range s.All() {
		seen[k]++
	}
	assert.Len(t, seen, len(want))
	for k, n := range seen {
		assert.True(t, want[k], "unexpected key %q", k)
		assert.Equal(t, 1, n, "key %q visited %d times", k, n)
	}
}

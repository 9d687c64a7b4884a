package hashset

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

// TestAgainstModel drives a Set and a golang-set with the same random
// operations and compares them after every step.
func TestAgainstModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := New(WithBuckets[int](2))
	model := mapset.NewThreadUnsafeSet[int]()

	for step := 0; step < 5000; step++ {
		key := rng.Intn(800)
		switch op := rng.Intn(10); {
		case op < 6:
			_, inserted := s.Insert(key)
			assert.Equal(t, model.Add(key), inserted, "step %d insert %d", step, key)
		case op < 9:
			want := 0
			if model.Contains(key) {
				want = 1
				model.Remove(key)
			}
			assert.Equal(t, want, s.Erase(key), "step %d erase %d", step, key)
		default:
			assert.Equal(t, model.Contains(key), s.Contains(key), "step %d count %d", step, key)
		}
		if !assert.Equal(t, model.Cardinality(), s.Size(), "step %d", step) {
			return
		}
	}

	got := mapset.NewThreadUnsafeSet(s.Keys()...)
	assert.Equal(t, s.Size(), len(s.Keys()), "iteration yields duplicates")
	assert.True(t, model.Equal(got))
}

func TestGrowthPreservesMembership(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := New[int]()
	inserted := mapset.NewThreadUnsafeSet[int]()

	for s.Buckets() < DefaultBuckets*GrowthFactor*GrowthFactor {
		k := rng.Int()
		before := s.Buckets()
		s.Insert(k)
		inserted.Add(k)
		if s.Buckets() != before {
			inserted.Each(func(k int) bool {
				return !assert.True(t, s.Contains(k), "key %d lost growing to %d buckets", k, s.Buckets())
			})
		}
	}
	assert.Equal(t, inserted.Cardinality(), s.Size())
}

func TestCopyIndependenceAgainstModel(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	orig := New[int]()
	for i := 0; i < 300; i++ {
		orig.Insert(rng.Intn(1000))
	}
	snapshot := mapset.NewThreadUnsafeSet(orig.Keys()...)

	c := orig.Clone()
	for i := 0; i < 300; i++ {
		if i%2 == 0 {
			c.Insert(rng.Intn(2000))
		} else {
			c.Erase(rng.Intn(1000))
		}
	}

	assert.Equal(t, snapshot.Cardinality(), orig.Size())
	assert.True(t, snapshot.Equal(mapset.NewThreadUnsafeSet(orig.Keys()...)))
}

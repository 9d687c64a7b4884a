package hashset

import (
	"github.com/bytedance/gopkg/lang/fastrand"
	"testing"
)

func BenchmarkInsertRandom(b *testing.B) {
	s := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Insert(fastrand.Int())
	}
}

func BenchmarkInsertExist(b *testing.B) {
	s := New[int]()
	s.Insert(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Insert(1)
	}
}

func BenchmarkContains(b *testing.B) {
	s := New[int]()
	for i := 0; i < 1<<16; i++ {
		s.Insert(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Contains(fastrand.Intn(1 << 17))
	}
}

func BenchmarkInsertErase(b *testing.B) {
	s := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := fastrand.Intn(1 << 12)
		if fastrand.Uint32n(2) == 0 {
			s.Insert(k)
		} else {
			s.Erase(k)
		}
	}
}

func BenchmarkIterate(b *testing.B) {
	s := New[int]()
	for i := 0; i < 1<<14; i++ {
		s.Insert(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range s.All() {
		}
	}
}

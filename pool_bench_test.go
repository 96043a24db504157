package teien

import (
	"fmt"
	"testing"
)

var benchSizes = []int{1000, 10000, 100000}

func benchName(size int) string {
	return fmt.Sprintf("%dK", size/1000)
}

func BenchmarkPoolAdd(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			for b.Loop() {
				p := NewComponentPool[position]()
				for i := range size {
					p.Add(EntityID(i), position{X: float32(i)})
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkPoolIterate(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			p := NewComponentPool[position]()
			for i := range size {
				p.Add(EntityID(i), position{X: float32(i)})
			}
			for b.Loop() {
				cs := p.Components()
				for i := range cs {
					cs[i].Y += cs[i].X
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkRefGet(b *testing.B) {
	p := NewComponentPool[position]()
	for i := range 10000 {
		p.Add(EntityID(i), position{})
	}
	r := p.Ref(5000)
	for b.Loop() {
		r.Get().X++
	}
	b.ReportAllocs()
}

// Removal is O(n): every survivor after the removed slot shifts.
func BenchmarkPoolRemoveFront(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(benchName(size), func(b *testing.B) {
			p := NewComponentPool[position]()
			for b.Loop() {
				b.StopTimer()
				for i := range size {
					p.Add(EntityID(i), position{})
				}
				b.StartTimer()
				p.Remove(0)
				b.StopTimer()
				p.Clear()
				b.StartTimer()
			}
		})
	}
}

func BenchmarkIterator(b *testing.B) {
	s := NewScene(1 << 12)
	root := s.NewEntity("root")
	for range 64 {
		c := root.Entity().EmplaceBack("branch")
		for range 32 {
			c.Entity().EmplaceBack("leaf")
		}
	}
	for _, mode := range []TraversalMode{DepthFirst, BreadthFirst} {
		b.Run(mode.String(), func(b *testing.B) {
			it := NewIterator(root, mode)
			for b.Loop() {
				it.Reset()
				for it.Next() {
				}
			}
			b.ReportAllocs()
		})
	}
}

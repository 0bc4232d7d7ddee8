package contiguous_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/pavanmanishd/contiguous"
)

// BenchmarkScalability tests how per-goroutine vectors scale with the
// number of goroutines. Containers are single owner, so each goroutine
// keeps its own.
func BenchmarkScalability(b *testing.B) {
	goroutineCounts := []int{1, 2, 4, 8, 16}

	for _, numGoroutines := range goroutineCounts {
		b.Run(fmt.Sprintf("Vector_PerGoroutine_%dGoroutines", numGoroutines), func(b *testing.B) {
			oldProcs := runtime.GOMAXPROCS(numGoroutines)
			defer runtime.GOMAXPROCS(oldProcs)

			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				v := contiguous.WithCapacity[int](1024)
				defer v.Release()

				i := 0
				for pb.Next() {
					v.PushBack(i)
					i++
					if i%1000 == 999 {
						v.Clear()
					}
				}
			})
		})

		b.Run(fmt.Sprintf("Builtin_PerGoroutine_%dGoroutines", numGoroutines), func(b *testing.B) {
			oldProcs := runtime.GOMAXPROCS(numGoroutines)
			defer runtime.GOMAXPROCS(oldProcs)

			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				s := make([]int, 0, 1024)

				i := 0
				for pb.Next() {
					s = append(s, i)
					i++
					if i%1000 == 999 {
						s = s[:0]
					}
				}
			})
		})
	}
}

// BenchmarkParallelReaders tests concurrent read-only access to one vector
func BenchmarkParallelReaders(b *testing.B) {
	v := contiguous.Filled(4096, 3)

	b.Run("Get", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			sum, i := 0, 0
			for pb.Next() {
				sum += v.Get(i & 4095)
				i++
			}
			_ = sum
		})
	})

	b.Run("Values", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				sum := 0
				for x := range v.Values() {
					sum += x
				}
				_ = sum
			}
		})
	})
}

package contiguous

import (
	"fmt"
	"testing"
)

var sinkInt int

// BenchmarkRealisticUsage compares Vector with builtin slices on common
// workloads
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: Appending without a size hint
	b.Run("Append/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[int]()
			for j := 0; j < 1000; j++ {
				v.PushBack(j)
			}
			sinkInt += v.Len()
		}
	})

	b.Run("Append/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < 1000; j++ {
				s = append(s, j)
			}
			sinkInt += len(s)
		}
	})

	// Test 2: Appending after Reserve
	b.Run("Reserved/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := WithCapacity[int](1000)
			for j := 0; j < 1000; j++ {
				v.PushBack(j)
			}
			sinkInt += v.Len()
		}
	})

	b.Run("Reserved/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, 1000)
			for j := 0; j < 1000; j++ {
				s = append(s, j)
			}
			sinkInt += len(s)
		}
	})

	// Test 3: Front insertion
	b.Run("InsertFront/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[int]()
			for j := 0; j < 200; j++ {
				v.Insert(0, j)
			}
			sinkInt += v.Len()
		}
	})

	b.Run("InsertFront/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < 200; j++ {
				s = append(s, 0)
				copy(s[1:], s)
				s[0] = j
			}
			sinkInt += len(s)
		}
	})

	// Test 4: Clear and refill (capacity reuse)
	b.Run("ClearRefill/Vector", func(b *testing.B) {
		v := New[int]()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < 512; j++ {
				v.PushBack(j)
			}
			v.Clear()
		}
	})

	b.Run("ClearRefill/Builtin", func(b *testing.B) {
		var s []int
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := 0; j < 512; j++ {
				s = append(s, j)
			}
			s = s[:0]
		}
	})
}

// BenchmarkAccess compares the three indexed accessors with builtin indexing
func BenchmarkAccess(b *testing.B) {
	for _, n := range []int{1_000, 100_000} {
		v := WithCapacity[int](n)
		for j := 0; j < n; j++ {
			v.PushBack(j)
		}
		s := v.Slice()

		b.Run(fmt.Sprintf("Get-%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sum := 0
				for j := 0; j < n; j++ {
					sum += v.Get(j)
				}
				sinkInt += sum
			}
		})

		b.Run(fmt.Sprintf("UnsafeGet-%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sum := 0
				for j := 0; j < n; j++ {
					sum += v.UnsafeGet(j)
				}
				sinkInt += sum
			}
		})

		b.Run(fmt.Sprintf("At-%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sum := 0
				for j := 0; j < n; j++ {
					x, _ := v.At(j)
					sum += x
				}
				sinkInt += sum
			}
		})

		b.Run(fmt.Sprintf("Builtin-%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sum := 0
				for j := 0; j < n; j++ {
					sum += s[j]
				}
				sinkInt += sum
			}
		})
	}
}

// BenchmarkArrayVsBuiltin compares Array copies with copying a fixed-length slice
func BenchmarkArrayVsBuiltin(b *testing.B) {
	src := make([]int, 1000)
	for i := range src {
		src[i] = i
	}
	a := ArrayFrom(1000, src)

	b.Run("array", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			c := a.Clone()
			sinkInt += c.Len()
		}
	})

	b.Run("builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			c := make([]int, len(src))
			copy(c, src)
			sinkInt += len(c)
		}
	})
}

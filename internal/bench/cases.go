package bench

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/pavanmanishd/contiguous"
	"github.com/pavanmanishd/contiguous/internal/config"
)

// Suite groups cases by the container family they measure.
type Suite int

const (
	VectorSuite Suite = iota
	ArraySuite
)

func (s Suite) String() string {
	switch s {
	case VectorSuite:
		return "vector"
	case ArraySuite:
		return "array"
	default:
		return fmt.Sprintf("Suite(%d)", int(s))
	}
}

// Env is handed to a case before timing starts.
type Env struct {
	Size int
	Rand *rand.Rand
}

// Case measures one operation on one container. Prepare does the untimed
// setup and returns the timed body.
type Case struct {
	Suite     Suite
	Native    bool
	Operation string
	Prepare   func(Env) func()
}

// Container returns the CSV label of the measured container.
func (c Case) Container(size int) string {
	switch {
	case c.Suite == VectorSuite && c.Native:
		return "slice"
	case c.Suite == VectorSuite:
		return "Vector"
	case c.Native:
		return fmt.Sprintf("array<%d>", size)
	default:
		return fmt.Sprintf("Array<%d>", size)
	}
}

type pair struct {
	native, library func(Env) func()
}

// Results are stored here so the timed loops are not optimized away.
var (
	sinkInt  int
	sinkBool bool
)

func sequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func randomInts(r *rand.Rand, n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = r.IntN(1000) + 1
	}
	return s
}

// checkedIndex mirrors Vector.At for builtin slices.
func checkedIndex(s []int, i int) (int, error) {
	if i < 0 || i >= len(s) {
		return 0, fmt.Errorf("index out of range [%d] with length %d", i, len(s))
	}
	return s[i], nil
}

var vectorOps = map[string]pair{
	"push_back": {
		native: func(e Env) func() {
			return func() {
				s := make([]int, 0, e.Size)
				for i := 0; i < e.Size; i++ {
					s = append(s, i)
				}
				sinkInt = len(s)
			}
		},
		library: func(e Env) func() {
			return func() {
				v := contiguous.New[int]()
				v.Reserve(e.Size)
				for i := 0; i < e.Size; i++ {
					v.PushBack(i)
				}
				sinkInt = v.Len()
			}
		},
	},
	"operator[]": {
		native: func(e Env) func() {
			s := sequence(e.Size)
			return func() {
				sum := 0
				for i := 0; i < len(s); i++ {
					sum += s[i]
				}
				sinkInt = sum
			}
		},
		library: func(e Env) func() {
			v := contiguous.FromSlice(sequence(e.Size))
			return func() {
				sum := 0
				for i := 0; i < v.Len(); i++ {
					sum += v.Get(i)
				}
				sinkInt = sum
			}
		},
	},
	"at": {
		native: func(e Env) func() {
			s := sequence(e.Size)
			return func() {
				sum := 0
				for i := 0; i < len(s); i++ {
					x, _ := checkedIndex(s, i)
					sum += x
				}
				sinkInt = sum
			}
		},
		library: func(e Env) func() {
			v := contiguous.FromSlice(sequence(e.Size))
			return func() {
				sum := 0
				for i := 0; i < v.Len(); i++ {
					x, _ := v.At(i)
					sum += x
				}
				sinkInt = sum
			}
		},
	},
	"iterate": {
		native: func(e Env) func() {
			s := sequence(e.Size)
			return func() {
				sum := 0
				for _, x := range s {
					sum += x
				}
				sinkInt = sum
			}
		},
		library: func(e Env) func() {
			v := contiguous.FromSlice(sequence(e.Size))
			return func() {
				sum := 0
				for x := range v.Values() {
					sum += x
				}
				sinkInt = sum
			}
		},
	},
	"copy_ctor": {
		native: func(e Env) func() {
			s := sequence(e.Size)
			return func() {
				sinkInt = len(slices.Clone(s))
			}
		},
		library: func(e Env) func() {
			v := contiguous.FromSlice(sequence(e.Size))
			return func() {
				sinkInt = v.Clone().Len()
			}
		},
	},
	"move_ctor": {
		native: func(e Env) func() {
			s := sequence(e.Size)
			return func() {
				moved := s
				s = nil
				sinkInt = len(moved)
			}
		},
		library: func(e Env) func() {
			v := contiguous.FromSlice(sequence(e.Size))
			return func() {
				sinkInt = v.Move().Len()
			}
		},
	},
	"front_back": {
		native: func(e Env) func() {
			s := sequence(e.Size)
			return func() {
				sinkInt = s[0] + s[len(s)-1]
			}
		},
		library: func(e Env) func() {
			v := contiguous.FromSlice(sequence(e.Size))
			return func() {
				f, _ := v.Front()
				b, _ := v.Back()
				sinkInt = f + b
			}
		},
	},
	"resize": {
		native: func(e Env) func() {
			base := sequence(e.Size)
			return func() {
				s := slices.Clone(base)
				half := len(s) / 2
				clear(s[half:])
				s = s[:half]
				s = append(s, make([]int, len(base)-half)...)
				sinkInt = len(s)
			}
		},
		library: func(e Env) func() {
			base := contiguous.FromSlice(sequence(e.Size))
			return func() {
				v := base.Clone()
				v.Resize(e.Size / 2)
				v.Resize(e.Size)
				sinkInt = v.Len()
			}
		},
	},
	"clear": {
		native: func(e Env) func() {
			base := sequence(e.Size)
			return func() {
				s := slices.Clone(base)
				clear(s)
				s = s[:0]
				sinkInt = len(s)
			}
		},
		library: func(e Env) func() {
			base := contiguous.FromSlice(sequence(e.Size))
			return func() {
				v := base.Clone()
				v.Clear()
				sinkInt = v.Len()
			}
		},
	},
	"insert_one": {
		native: func(e Env) func() {
			base := sequence(e.Size)
			return func() {
				s := slices.Insert(slices.Clone(base), 0, -1)
				sinkInt = len(s)
			}
		},
		library: func(e Env) func() {
			base := contiguous.FromSlice(sequence(e.Size))
			return func() {
				v := base.Clone()
				v.Insert(0, -1)
				sinkInt = v.Len()
			}
		},
	},
	"erase_one": {
		native: func(e Env) func() {
			base := sequence(e.Size)
			return func() {
				s := slices.Delete(slices.Clone(base), 0, 1)
				sinkInt = len(s)
			}
		},
		library: func(e Env) func() {
			base := contiguous.FromSlice(sequence(e.Size))
			return func() {
				v := base.Clone()
				v.Erase(0)
				sinkInt = v.Len()
			}
		},
	},
	"compare_eq": {
		native: func(e Env) func() {
			a := sequence(e.Size)
			b := slices.Clone(a)
			return func() {
				sinkBool = slices.Equal(a, b)
			}
		},
		library: func(e Env) func() {
			a := contiguous.FromSlice(sequence(e.Size))
			b := a.Clone()
			return func() {
				sinkBool = contiguous.Equal(a, b)
			}
		},
	},
	"swap": {
		native: func(e Env) func() {
			base := sequence(e.Size)
			other := slices.Clone(base)
			return func() {
				a := slices.Clone(base)
				a, other = other, a
				sinkInt = len(a)
			}
		},
		library: func(e Env) func() {
			base := contiguous.FromSlice(sequence(e.Size))
			other := base.Clone()
			return func() {
				a := base.Clone()
				a.Swap(other)
				sinkInt = a.Len()
			}
		},
	},
	"random_insert": {
		native: func(e Env) func() {
			values := randomInts(e.Rand, e.Size)
			return func() {
				var s []int
				for i, x := range values {
					s = slices.Insert(s, i%(len(s)+1), x)
				}
				sinkInt = len(s)
			}
		},
		library: func(e Env) func() {
			values := randomInts(e.Rand, e.Size)
			return func() {
				v := contiguous.New[int]()
				for i, x := range values {
					v.Insert(i%(v.Len()+1), x)
				}
				sinkInt = v.Len()
			}
		},
	},
	"sort": {
		native: func(e Env) func() {
			s := randomInts(e.Rand, e.Size)
			return func() {
				slices.Sort(s)
				sinkInt = s[0]
			}
		},
		library: func(e Env) func() {
			v := contiguous.FromSlice(randomInts(e.Rand, e.Size))
			return func() {
				slices.Sort(v.Slice())
				sinkInt = v.Get(0)
			}
		},
	},
}

var arrayOps = map[string]pair{
	"ctor_default": {
		native: func(e Env) func() {
			return func() {
				sinkInt = len(make([]int, e.Size))
			}
		},
		library: func(e Env) func() {
			return func() {
				sinkInt = contiguous.NewArray[int](e.Size).Len()
			}
		},
	},
	"ctor_init_list": {
		native: func(e Env) func() {
			src := sequence(e.Size)
			return func() {
				s := make([]int, e.Size)
				copy(s, src)
				sinkInt = len(s)
			}
		},
		library: func(e Env) func() {
			src := sequence(e.Size)
			return func() {
				sinkInt = contiguous.ArrayFrom(e.Size, src).Len()
			}
		},
	},
	"operator[]": {
		native: func(e Env) func() {
			s := sequence(e.Size)
			return func() {
				sum := 0
				for i := 0; i < len(s); i++ {
					sum += s[i]
				}
				sinkInt = sum
			}
		},
		library: func(e Env) func() {
			a := contiguous.ArrayFrom(e.Size, sequence(e.Size))
			return func() {
				sum := 0
				for i := 0; i < a.Len(); i++ {
					sum += a.Get(i)
				}
				sinkInt = sum
			}
		},
	},
	"at": {
		native: func(e Env) func() {
			s := sequence(e.Size)
			return func() {
				sum := 0
				for i := 0; i < len(s); i++ {
					x, _ := checkedIndex(s, i)
					sum += x
				}
				sinkInt = sum
			}
		},
		library: func(e Env) func() {
			a := contiguous.ArrayFrom(e.Size, sequence(e.Size))
			return func() {
				sum := 0
				for i := 0; i < a.Len(); i++ {
					x, _ := a.At(i)
					sum += x
				}
				sinkInt = sum
			}
		},
	},
	"iterate": {
		native: func(e Env) func() {
			s := sequence(e.Size)
			return func() {
				sum := 0
				for _, x := range s {
					sum += x
				}
				sinkInt = sum
			}
		},
		library: func(e Env) func() {
			a := contiguous.ArrayFrom(e.Size, sequence(e.Size))
			return func() {
				sum := 0
				for x := range a.Values() {
					sum += x
				}
				sinkInt = sum
			}
		},
	},
	"copy_ctor": {
		native: func(e Env) func() {
			s := sequence(e.Size)
			return func() {
				sinkInt = len(slices.Clone(s))
			}
		},
		library: func(e Env) func() {
			a := contiguous.ArrayFrom(e.Size, sequence(e.Size))
			return func() {
				sinkInt = a.Clone().Len()
			}
		},
	},
	"move_ctor": {
		native: func(e Env) func() {
			src := sequence(e.Size)
			dst := make([]int, e.Size)
			return func() {
				copy(dst, src)
				clear(src)
				sinkInt = len(dst)
			}
		},
		library: func(e Env) func() {
			src := contiguous.ArrayFrom(e.Size, sequence(e.Size))
			dst := contiguous.NewArray[int](e.Size)
			return func() {
				dst.MoveFrom(src)
				sinkInt = dst.Len()
			}
		},
	},
	"swap": {
		native: func(e Env) func() {
			a := sequence(e.Size)
			b := slices.Clone(a)
			return func() {
				for i := range a {
					a[i], b[i] = b[i], a[i]
				}
				sinkInt = len(a)
			}
		},
		library: func(e Env) func() {
			a := contiguous.ArrayFrom(e.Size, sequence(e.Size))
			b := a.Clone()
			return func() {
				a.Swap(b)
				sinkInt = a.Len()
			}
		},
	},
	"compare_eq": {
		native: func(e Env) func() {
			a := sequence(e.Size)
			b := slices.Clone(a)
			return func() {
				sinkBool = slices.Equal(a, b)
			}
		},
		library: func(e Env) func() {
			a := contiguous.ArrayFrom(e.Size, sequence(e.Size))
			b := a.Clone()
			return func() {
				sinkBool = contiguous.ArrayEqual(a, b)
			}
		},
	},
	"compare_three_way": {
		native: func(e Env) func() {
			a := sequence(e.Size)
			b := slices.Clone(a)
			return func() {
				sinkInt = slices.Compare(a, b)
			}
		},
		library: func(e Env) func() {
			a := contiguous.ArrayFrom(e.Size, sequence(e.Size))
			b := a.Clone()
			return func() {
				sinkInt = contiguous.ArrayCompare(a, b)
			}
		},
	},
}

// Cases returns the selected cases of a suite in catalogue order, the
// builtin variant of each operation before the library one.
func Cases(suite Suite, cfg config.Config) []Case {
	names, ops := config.VectorOperations, vectorOps
	if suite == ArraySuite {
		names, ops = config.ArrayOperations, arrayOps
	}

	var out []Case
	for _, name := range names {
		if !cfg.Selected(name) {
			continue
		}
		p, ok := ops[name]
		if !ok {
			continue
		}
		out = append(out,
			Case{Suite: suite, Native: true, Operation: name, Prepare: p.native},
			Case{Suite: suite, Operation: name, Prepare: p.library},
		)
	}
	return out
}

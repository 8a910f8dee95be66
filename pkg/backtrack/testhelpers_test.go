package backtrack

// testhelpers_test.go: small problem states used across the engine tests.

import (
	"fmt"
	"strings"
)

// subsetState enumerates all subsets of a fixed item list: at index i the two
// alternatives are "take item i" (true) and "skip item i" (false). Terminal
// once every item is decided. Used for enumeration, cap and early-stop tests.
type subsetState struct {
	typ    Type
	items  []int
	chosen []bool
}

func newSubsetState(typ Type, items ...int) *subsetState {
	return &subsetState{typ: typ, items: items}
}

func (s *subsetState) ProblemType() Type { return s.typ }
func (s *subsetState) Size() int         { return len(s.items) - len(s.chosen) }
func (s *subsetState) IsFinal() bool     { return s.Size() == 0 }

func (s *subsetState) Alternatives() []bool { return []bool{true, false} }

func (s *subsetState) Forward(take bool)  { s.chosen = append(s.chosen, take) }
func (s *subsetState) Backward(take bool) { s.chosen = s.chosen[:len(s.chosen)-1] }

func (s *subsetState) Value() float64 {
	sum := 0.0
	for i, take := range s.chosen {
		if take {
			sum += float64(s.items[i])
		}
	}
	return sum
}

func (s *subsetState) Clone() *subsetState {
	c := &subsetState{typ: s.typ, items: s.items}
	c.chosen = append([]bool(nil), s.chosen...)
	return c
}

func (s *subsetState) Key() string {
	var b strings.Builder
	for _, take := range s.chosen {
		if take {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func (s *subsetState) Solution() ([]int, bool) {
	var out []int
	for i, take := range s.chosen {
		if take {
			out = append(out, s.items[i])
		}
	}
	return out, true
}

var _ State[*subsetState, bool, []int] = (*subsetState)(nil)

// boundedSubsetState is subsetState plus a tight upper-bound estimator for
// Max problems: the value reachable through an alternative is at most the
// running sum, plus the item if taken, plus every positive item still
// undecided afterwards.
type boundedSubsetState struct {
	items  []int
	chosen []bool
}

func newBoundedSubsetState(items ...int) *boundedSubsetState {
	return &boundedSubsetState{items: items}
}

func (s *boundedSubsetState) ProblemType() Type { return Max }
func (s *boundedSubsetState) Size() int         { return len(s.items) - len(s.chosen) }
func (s *boundedSubsetState) IsFinal() bool     { return s.Size() == 0 }

func (s *boundedSubsetState) Alternatives() []bool { return []bool{true, false} }

func (s *boundedSubsetState) Forward(take bool)  { s.chosen = append(s.chosen, take) }
func (s *boundedSubsetState) Backward(take bool) { s.chosen = s.chosen[:len(s.chosen)-1] }

func (s *boundedSubsetState) Value() float64 {
	sum := 0.0
	for i, take := range s.chosen {
		if take {
			sum += float64(s.items[i])
		}
	}
	return sum
}

func (s *boundedSubsetState) EstimatedValue(take bool) float64 {
	est := s.Value()
	if take {
		est += float64(s.items[len(s.chosen)])
	}
	for _, item := range s.items[len(s.chosen)+1:] {
		if item > 0 {
			est += float64(item)
		}
	}
	return est
}

func (s *boundedSubsetState) Clone() *boundedSubsetState {
	c := &boundedSubsetState{items: s.items}
	c.chosen = append([]bool(nil), s.chosen...)
	return c
}

func (s *boundedSubsetState) Key() string {
	var b strings.Builder
	for _, take := range s.chosen {
		if take {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func (s *boundedSubsetState) Solution() ([]int, bool) {
	var out []int
	for i, take := range s.chosen {
		if take {
			out = append(out, s.items[i])
		}
	}
	return out, true
}

var (
	_ State[*boundedSubsetState, bool, []int] = (*boundedSubsetState)(nil)
	_ Estimator[bool]                         = (*boundedSubsetState)(nil)
)

// sequenceState is a one-level tree whose leaves carry a fixed list of
// terminal values, visited left to right. It pins down the order in which
// the engine sees terminal values, which the streaming acceptance tests
// depend on. leaf is -1 at the root.
type sequenceState struct {
	typ    Type
	values []float64
	leaf   int
}

func newSequenceState(typ Type, values ...float64) *sequenceState {
	return &sequenceState{typ: typ, values: values, leaf: -1}
}

func (s *sequenceState) ProblemType() Type { return s.typ }

func (s *sequenceState) Size() int {
	if s.leaf >= 0 {
		return 0
	}
	return 1
}

func (s *sequenceState) IsFinal() bool { return s.leaf >= 0 }

func (s *sequenceState) Alternatives() []int {
	alts := make([]int, len(s.values))
	for i := range alts {
		alts[i] = i
	}
	return alts
}

func (s *sequenceState) Forward(i int)  { s.leaf = i }
func (s *sequenceState) Backward(i int) { s.leaf = -1 }

func (s *sequenceState) Value() float64 { return s.values[s.leaf] }

func (s *sequenceState) Clone() *sequenceState {
	c := *s
	return &c
}

func (s *sequenceState) Key() string { return fmt.Sprintf("leaf-%d", s.leaf) }

func (s *sequenceState) Solution() (float64, bool) {
	if s.leaf < 0 {
		return 0, false
	}
	return s.values[s.leaf], true
}

var _ State[*sequenceState, int, float64] = (*sequenceState)(nil)

// comboState picks exactly k distinct elements from a pool, one per forward
// step, in any order. Its Key sorts the picks, so the same set reached
// through different orders collides in the solution set - the dedup tests
// rely on that.
type comboState struct {
	pool   []int
	k      int
	chosen []int
}

func newComboState(k int, pool ...int) *comboState {
	return &comboState{pool: pool, k: k}
}

func (s *comboState) ProblemType() Type { return All }
func (s *comboState) Size() int         { return s.k - len(s.chosen) }
func (s *comboState) IsFinal() bool     { return s.Size() == 0 }

func (s *comboState) Alternatives() []int {
	var alts []int
	for _, v := range s.pool {
		taken := false
		for _, c := range s.chosen {
			if c == v {
				taken = true
				break
			}
		}
		if !taken {
			alts = append(alts, v)
		}
	}
	return alts
}

func (s *comboState) Forward(v int)  { s.chosen = append(s.chosen, v) }
func (s *comboState) Backward(v int) { s.chosen = s.chosen[:len(s.chosen)-1] }

func (s *comboState) Value() float64 { return 0 }

func (s *comboState) Clone() *comboState {
	c := &comboState{pool: s.pool, k: s.k}
	c.chosen = append([]int(nil), s.chosen...)
	return c
}

func (s *comboState) Key() string {
	sorted := append([]int(nil), s.chosen...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return fmt.Sprint(sorted)
}

func (s *comboState) Solution() ([]int, bool) {
	return append([]int(nil), s.chosen...), true
}

var _ State[*comboState, int, []int] = (*comboState)(nil)

// targetSumState searches for a subset of items summing exactly to target.
// It overrides the usual Size()==0 stopping predicate: the state is final as
// soon as the running sum hits the target, and overshooting branches are
// never offered. Deciding the last item without hitting the target is a dead
// end with no alternatives, which the engine silently backtracks out of.
type targetSumState struct {
	items  []int
	target int
	sum    int
	chosen []bool
}

func newTargetSumState(target int, items ...int) *targetSumState {
	return &targetSumState{items: items, target: target}
}

func (s *targetSumState) ProblemType() Type { return All }
func (s *targetSumState) Size() int         { return len(s.items) - len(s.chosen) }
func (s *targetSumState) IsFinal() bool     { return s.sum == s.target }

func (s *targetSumState) Alternatives() []bool {
	if len(s.chosen) == len(s.items) {
		return nil
	}
	if s.sum+s.items[len(s.chosen)] <= s.target {
		return []bool{true, false}
	}
	return []bool{false}
}

func (s *targetSumState) Forward(take bool) {
	if take {
		s.sum += s.items[len(s.chosen)]
	}
	s.chosen = append(s.chosen, take)
}

func (s *targetSumState) Backward(take bool) {
	s.chosen = s.chosen[:len(s.chosen)-1]
	if take {
		s.sum -= s.items[len(s.chosen)]
	}
}

func (s *targetSumState) Value() float64 { return float64(s.sum) }

func (s *targetSumState) Clone() *targetSumState {
	c := &targetSumState{items: s.items, target: s.target, sum: s.sum}
	c.chosen = append([]bool(nil), s.chosen...)
	return c
}

func (s *targetSumState) Key() string {
	var b strings.Builder
	for _, take := range s.chosen {
		if take {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func (s *targetSumState) Solution() ([]int, bool) {
	if s.sum != s.target {
		return nil, false
	}
	var out []int
	for i, take := range s.chosen {
		if take {
			out = append(out, s.items[i])
		}
	}
	return out, true
}

var _ State[*targetSumState, bool, []int] = (*targetSumState)(nil)

// nonDecreasingState violates the monotonic-progress contract on purpose:
// Size never changes, so the search descends forever. Only usable together
// with a node limit.
type nonDecreasingState struct {
	depth int
}

func (s *nonDecreasingState) ProblemType() Type   { return All }
func (s *nonDecreasingState) Size() int           { return 1 }
func (s *nonDecreasingState) IsFinal() bool       { return false }
func (s *nonDecreasingState) Alternatives() []int { return []int{0} }
func (s *nonDecreasingState) Forward(int)         { s.depth++ }
func (s *nonDecreasingState) Backward(int)        { s.depth-- }
func (s *nonDecreasingState) Value() float64      { return 0 }

func (s *nonDecreasingState) Clone() *nonDecreasingState {
	c := *s
	return &c
}

func (s *nonDecreasingState) Key() string { return fmt.Sprintf("depth-%d", s.depth) }

func (s *nonDecreasingState) Solution() (int, bool) { return 0, false }

var _ State[*nonDecreasingState, int, int] = (*nonDecreasingState)(nil)

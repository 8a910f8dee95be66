// Package main demonstrates basic strategies usage patterns.
//
// This tour shows how to describe a problem once and let a strategy drive
// it: backtracking enumeration, backtracking optimization with pruning, and
// divide & conquer. Each section is self-contained; the per-problem programs
// under examples/ go deeper.
package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/marionauta/strategies/pkg/backtrack"
	"github.com/marionauta/strategies/pkg/dac"
)

func main() {
	fmt.Println("=== Strategies Examples ===")
	fmt.Println()

	enumerationExample()
	optimizationExample()
	divideAndConquerExample()
}

// enumerationExample collects every way to pick 2 letters out of 4.
func enumerationExample() {
	fmt.Println("1. Backtracking, All mode:")

	engine := backtrack.New[*pickState, string, []string](
		&pickState{pool: []string{"a", "b", "c", "d"}, k: 2},
	)
	if err := engine.Solve(context.Background()); err != nil {
		fmt.Println("   search aborted:", err)
		return
	}

	var keys []string
	for _, s := range engine.AllSolutions() {
		keys = append(keys, s.Key())
	}
	sort.Strings(keys)
	fmt.Printf("   2 of {a b c d} => %v\n\n", keys)
}

// optimizationExample maximizes a subset sum while skipping hopeless
// branches via the estimator.
func optimizationExample() {
	fmt.Println("2. Backtracking, Max mode with pruning:")

	engine := backtrack.New[*gainState, bool, float64](
		&gainState{gains: []int{7, -3, 2, -8, 5}},
	)
	if err := engine.Solve(context.Background()); err != nil {
		fmt.Println("   search aborted:", err)
		return
	}

	fmt.Printf("   best subset sum of [7 -3 2 -8 5] => %.0f (%d branches pruned)\n\n",
		engine.BestValue(), engine.Stats().Pruned)
}

// divideAndConquerExample finds the largest element by halving.
func divideAndConquerExample() {
	fmt.Println("3. Divide & conquer:")

	algorithm := dac.New[*maxProblem, int, int](
		&maxProblem{data: []int{12, 99, 4, 57, 36, 71}},
	)
	largest, ok := algorithm.Solution()
	if !ok {
		fmt.Println("   no solution")
		return
	}
	fmt.Printf("   max of [12 99 4 57 36 71] => %d\n", largest)
}

// pickState chooses k distinct letters from a pool, deduplicating orderings
// through its sorted Key.
type pickState struct {
	pool   []string
	k      int
	chosen []string
}

func (s *pickState) ProblemType() backtrack.Type { return backtrack.All }
func (s *pickState) Size() int                   { return s.k - len(s.chosen) }
func (s *pickState) IsFinal() bool               { return s.Size() == 0 }

func (s *pickState) Alternatives() []string {
	var alts []string
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

func (s *pickState) Forward(v string)  { s.chosen = append(s.chosen, v) }
func (s *pickState) Backward(v string) { s.chosen = s.chosen[:len(s.chosen)-1] }

func (s *pickState) Value() float64 { return 0 }

func (s *pickState) Clone() *pickState {
	c := &pickState{pool: s.pool, k: s.k}
	c.chosen = append([]string(nil), s.chosen...)
	return c
}

func (s *pickState) Key() string {
	sorted := append([]string(nil), s.chosen...)
	sort.Strings(sorted)
	return fmt.Sprint(sorted)
}

func (s *pickState) Solution() ([]string, bool) {
	return append([]string(nil), s.chosen...), true
}

// gainState decides take/skip per number, maximizing the chosen sum. The
// estimator adds every later positive number, a sound upper bound.
type gainState struct {
	gains  []int
	sum    int
	chosen []bool
}

func (s *gainState) ProblemType() backtrack.Type { return backtrack.Max }
func (s *gainState) Size() int                   { return len(s.gains) - len(s.chosen) }
func (s *gainState) IsFinal() bool               { return s.Size() == 0 }

func (s *gainState) Alternatives() []bool { return []bool{true, false} }

func (s *gainState) Forward(take bool) {
	if take {
		s.sum += s.gains[len(s.chosen)]
	}
	s.chosen = append(s.chosen, take)
}

func (s *gainState) Backward(take bool) {
	s.chosen = s.chosen[:len(s.chosen)-1]
	if take {
		s.sum -= s.gains[len(s.chosen)]
	}
}

func (s *gainState) Value() float64 { return float64(s.sum) }

func (s *gainState) EstimatedValue(take bool) float64 {
	est := s.sum
	if take {
		est += s.gains[len(s.chosen)]
	}
	for _, g := range s.gains[len(s.chosen)+1:] {
		if g > 0 {
			est += g
		}
	}
	return float64(est)
}

func (s *gainState) Clone() *gainState {
	c := &gainState{gains: s.gains, sum: s.sum}
	c.chosen = append([]bool(nil), s.chosen...)
	return c
}

func (s *gainState) Key() string { return fmt.Sprint(s.chosen) }

func (s *gainState) Solution() (float64, bool) { return float64(s.sum), true }

// maxProblem finds the maximum of a slice by divide & conquer.
type maxProblem struct {
	data []int
}

func (p *maxProblem) Size() int        { return len(p.data) }
func (p *maxProblem) IsBaseCase() bool { return len(p.data) == 1 }

func (p *maxProblem) BaseCaseSolution() int { return p.data[0] }

func (p *maxProblem) SubproblemCount() int { return 2 }

func (p *maxProblem) Subproblem(i int) *maxProblem {
	mid := len(p.data) / 2
	if i == 0 {
		return &maxProblem{data: p.data[:mid]}
	}
	return &maxProblem{data: p.data[mid:]}
}

func (p *maxProblem) Combine(partials []int) int {
	if partials[0] >= partials[1] {
		return partials[0]
	}
	return partials[1]
}

func (p *maxProblem) Solution(partial int) (int, bool) { return partial, true }

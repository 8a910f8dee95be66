// Package backtrack implements a generic depth-first backtracking engine for
// combinatorial search problems. Callers supply the problem-specific logic
// through the State interface (how to branch, how to mutate and undo, how to
// score a terminal state); the engine supplies the traversal, pruning,
// solution bookkeeping, and termination policy.
//
// # Architecture Overview
//
// The engine owns exactly one live State instance and mutates it in place
// with strict stack discipline:
//
//	Forward(a)  on entry to a search frame
//	Backward(a) on exit from that frame, unconditionally
//
// This symmetry is what makes single-instance mutation safe without copying
// the whole state per branch. Accepted terminal states are snapshotted with
// Clone and stored in a deduplicated set keyed by Key, capped at a
// configurable solution count; reaching the cap short-circuits the remaining
// siblings at every level of the tree.
//
// # Problem Types
//
// A problem declares one of three optimization modes, fixed for the lifetime
// of a search:
//
//	Max - optimization, larger terminal value is better
//	Min - optimization, smaller terminal value is better
//	All - enumeration, every terminal state reached is a solution
//
// Under Max and Min the engine keeps a running best value and accepts only
// terminal states that strictly improve on it. This is a streaming filter:
// a terminal state tied with the current best is not retained, and earlier
// accepted states are never evicted when a better one arrives later.
//
// # Pruning
//
// If the state additionally implements Estimator, branches whose estimated
// value cannot strictly improve on the running best are skipped before being
// explored. Soundness depends entirely on the estimate being a valid bound
// (upper bound for Max, lower bound for Min); the engine performs no safety
// check. Without an Estimator the engine never prunes, which is always sound.
package backtrack

// Type is the optimization mode of a problem. It governs solution acceptance
// and pruning, and is queried from the live state at construction time and
// during the search.
type Type int

const (
	// All requests every terminal state as a solution. No optimization, no
	// pruning.
	All Type = iota

	// Max requests maximization of the terminal value (e.g. earnings).
	Max

	// Min requests minimization of the terminal value (e.g. travel time).
	Min
)

// String returns a human-readable name for the problem type.
func (t Type) String() string {
	switch t {
	case All:
		return "All"
	case Max:
		return "Max"
	case Min:
		return "Min"
	default:
		return "Unknown"
	}
}

// State is the caller-implemented contract the engine searches over. P is the
// implementing type itself (so Clone can return it without loss), A is the
// alternative (move) type, and S is the externally meaningful solution type.
//
// Contract:
//   - Size reports a non-negative magnitude that strictly decreases on every
//     Forward and strictly increases on the matching Backward. Violating this
//     monotonic-progress invariant risks non-termination, which the engine
//     does not detect.
//   - IsFinal reports whether no further forward step is possible. The common
//     policy is Size() == 0, but any stopping predicate is allowed (budget
//     exhaustion, a target being hit, and so on).
//   - Alternatives returns the finite ordered set of legal next moves from
//     the current state. Order defines exploration order and therefore the
//     tie-break order among equally scored solutions.
//   - Forward and Backward mutate the state in place. For any reachable
//     state s and alternative a in s.Alternatives(), applying Forward(a) then
//     Backward(a) must restore s exactly in every field observed by Key. The
//     whole rollback-based traversal depends on this.
//   - Value is only meaningful on final states; it is the terminal score.
//   - Clone returns a structurally equal deep copy, used to snapshot accepted
//     terminal states into the solution set.
//   - Key returns a string identifying the state up to structural equality.
//     Two states are the same solution if and only if their keys are equal;
//     the solution set is deduplicated on it.
//   - Solution extracts the externally meaningful result from a terminal
//     state. It reports false when the terminal state does not correspond to
//     a valid output.
type State[P, A, S any] interface {
	// ProblemType reports the optimization mode. Fixed for the lifetime of a
	// search.
	ProblemType() Type

	// Size is the remaining magnitude of the problem, usually referred to as n.
	Size() int

	// IsFinal reports whether going forward is impossible.
	IsFinal() bool

	// Alternatives lists the different ways the problem can go forward
	// (and backward after).
	Alternatives() []A

	Forward(a A)
	Backward(a A)

	// Value is the current state's value. Meaningful only when IsFinal.
	Value() float64

	// Clone returns a deep copy sharing no mutable memory with the receiver.
	Clone() P

	// Key identifies the state up to structural equality.
	Key() string

	// Solution converts a final state into the external solution type, or
	// reports false if the state has no valid output.
	Solution() (S, bool)
}

// Estimator is an optional upgrade interface for State implementations that
// can bound the value reachable through an alternative. The engine discovers
// it by type assertion at construction time, in the manner of io.WriterTo.
//
// EstimatedValue must return an upper bound for Max problems and a lower
// bound for Min problems on the best terminal value reachable through a.
// A loose bound only weakens pruning; an invalid bound silently produces an
// incomplete or wrong solution set. States that do not implement Estimator
// are searched without pruning, which is equivalent to an estimate of +Inf
// (Max) or -Inf (Min).
type Estimator[A any] interface {
	EstimatedValue(a A) float64
}

package backtrack

// stats.go: statistics for the backtracking search

import "time"

// SearchStats holds statistics about a search. They accumulate across
// repeated Solve calls on the same engine.
type SearchStats struct {
	NodesExplored  int           // Search frames entered (terminal and not)
	ForwardSteps   int           // Forward calls performed on the live state
	Backtracks     int           // Backward calls performed on the live state
	Pruned         int           // Alternatives discarded by the estimate filter
	SolutionsFound int           // Terminal snapshots inserted into the solution set
	MaxDepth       int           // Deepest search frame reached
	SearchTime     time.Duration // Wall-clock time spent inside Solve
}

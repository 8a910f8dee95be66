package backtrack

import "time"

// Option configures an Engine at construction time. Use helpers like
// WithSolutionCount, WithNodeLimit and WithTimeLimit.
type Option func(*config)

type config struct {
	solutionCount int
	nodeLimit     int
	timeLimit     time.Duration
}

// WithSolutionCount changes the number of solutions to collect before the
// search stops.
//
// If the default is too small (your problem ramifies a lot) or too big (you
// don't want unnecessary work) you can adjust it to your case. Setting it to
// 1 makes the engine stop after the first solution, which is the natural
// configuration for satisfiability-style problems.
//
// Default is DefaultSolutionCount. Values below 1 are ignored.
func WithSolutionCount(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.solutionCount = n
		}
	}
}

// WithNodeLimit limits the number of search node expansions. When the limit
// is reached Solve returns ErrSearchLimitReached together with whatever
// solutions were accumulated. Zero or negative means no limit.
//
// A node limit also bounds the damage of a State whose Size fails to
// decrease on Forward: such a state makes the search run forever, and the
// engine has no detection for it.
func WithNodeLimit(n int) Option {
	return func(c *config) { c.nodeLimit = n }
}

// WithTimeLimit sets a hard wall-clock limit for Solve. When it expires the
// search unwinds and Solve returns context.DeadlineExceeded together with
// whatever solutions were accumulated. Zero means no limit.
func WithTimeLimit(d time.Duration) Option {
	return func(c *config) { c.timeLimit = d }
}

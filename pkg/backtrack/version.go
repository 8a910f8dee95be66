// Package backtrack is part of the strategies library, a collection of
// algorithm-solving strategies where you only define your problem.
//
// Version: 0.1.0
package backtrack

// Version of the strategies library.
const Version = "0.1.0"

// Package optimize provides a deterministic local-search engine for
// constrained integer problems, and the bit-distribution problem that
// minimizes total mean phrase length.
package optimize

import (
	"github.com/phrasebit/phrasebit/core/errors"
	"github.com/phrasebit/phrasebit/internal/logging"
)

// Comparable is implemented by optimizer inputs and outputs. Compare
// returns a negative value, zero, or a positive value as the receiver is
// ordered before, equal to, or after other. Output implementations may
// compare fuzzily; Input implementations must be a total order where equal
// means identical.
type Comparable[T any] interface {
	Compare(other T) int
}

// Problem defines a constrained integer minimization problem.
//
// An Input is a point in the search space, an Output the function value at
// that point, and a Direction a way of moving from one Input to an adjacent
// one. Directions must be enumerated in a fixed deterministic order and
// Start must always return the same Input, or the search loses its
// determinism guarantee.
type Problem[I Comparable[I], O Comparable[O], D any] interface {
	// Function evaluates the objective at input.
	Function(input I) O

	// Start returns a legal starting input.
	Start() (I, error)

	// MoveOne returns the input one step away from input in direction.
	// One step is with regard to the input, not the direction: adjacent
	// points must not be skipped.
	MoveOne(input I, direction D) I

	// Illegal reports whether input violates the problem constraints.
	Illegal(input I) bool

	// Directions returns every direction in enumeration order. Known
	// illegal directions need not be included.
	Directions() []D

	// MaxPasses is the number of accepted passes allowed before the
	// search is abandoned as non-converging.
	MaxPasses() int
}

// Optimizer finds a local minimum of a Problem.
//
// The search starts at the problem's starting input and repeatedly scans
// all directions for a descent direction; a found direction is followed
// while it stays legal and keeps descending, after which the scan restarts.
// The search ends when a full scan accepts no move.
//
// If two inputs produce outputs that compare equal, the lexicographically
// smaller input wins the tie. The tie-break keeps the search deterministic
// and non-cycling under fuzzy-equal outputs.
type Optimizer[I Comparable[I], O Comparable[O], D any] struct {
	problem Problem[I, O, D]

	current I
	output  O
}

// New creates an Optimizer for problem. No search is performed.
func New[I Comparable[I], O Comparable[O], D any](problem Problem[I, O, D]) *Optimizer[I, O, D] {
	return &Optimizer[I, O, D]{problem: problem}
}

// FindMin runs the search and returns the input of the found minimum.
// Identical problems yield identical results.
func (o *Optimizer[I, O, D]) FindMin() (I, error) {
	var zero I
	start, err := o.problem.Start()
	if err != nil {
		return zero, err
	}
	if o.problem.Illegal(start) {
		return zero, &errors.ConfigurationError{Reason: "provided starting input is not legal"}
	}
	o.current = start
	o.output = o.problem.Function(start)
	logging.Debug("starting optimization", "input", o.current, "output", o.output)

	for pass := 0; o.tryAllDirections(); pass++ {
		logging.Debug("followed descent directions", "passes", pass+1)
		if pass == o.problem.MaxPasses() {
			return zero, &errors.NonConvergenceError{Passes: pass}
		}
	}
	logging.Debug("finished optimization", "input", o.current, "output", o.output)
	return o.current, nil
}

// tryAllDirections scans directions in enumeration order until one descends,
// then follows it as far as it goes. Reports whether any move was accepted.
func (o *Optimizer[I, O, D]) tryAllDirections() bool {
	for _, direction := range o.problem.Directions() {
		descended := false
		for o.tryDirection(direction) {
			descended = true
		}
		if descended {
			return true
		}
	}
	return false
}

// tryDirection moves one step in direction if the step is legal and leads
// to a lower output, or to an equal output at a lexicographically smaller
// input. Reports whether the move was accepted.
func (o *Optimizer[I, O, D]) tryDirection(direction D) bool {
	next := o.problem.MoveOne(o.current, direction)
	if o.problem.Illegal(next) {
		logging.Debug("direction leads beyond constraints", "input", next)
		return false
	}

	inputDiff := next.Compare(o.current)
	nextOutput := o.problem.Function(next)
	outputDiff := nextOutput.Compare(o.output)

	if outputDiff < 0 || (outputDiff == 0 && inputDiff < 0) {
		o.current = next
		o.output = nextOutput
		logging.Debug("followed direction", "input", o.current, "output", o.output)
		return true
	}
	logging.Debug("rejected direction", "input", next, "output", nextOutput)
	return false
}

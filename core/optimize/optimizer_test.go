package optimize

import (
	"errors"
	"testing"

	pberrors "github.com/phrasebit/phrasebit/core/errors"
)

// boundedInt is a one-dimensional input for the quadratic test problem.
type boundedInt int

func (b boundedInt) Compare(other boundedInt) int {
	return int(b) - int(other)
}

// fuzzyFloat compares exactly; the quadratic problem needs no tolerance.
type fuzzyFloat float64

func (f fuzzyFloat) Compare(other fuzzyFloat) int {
	switch {
	case f < other:
		return -1
	case f > other:
		return 1
	}
	return 0
}

type step int

const (
	greater step = iota
	lesser
)

// quadratic is (x - minAt)^2 constrained to [lower, upper].
type quadratic struct {
	minAt  int
	lower  int
	upper  int
	budget int
}

func (q *quadratic) Function(x boundedInt) fuzzyFloat {
	d := float64(int(x) - q.minAt)
	return fuzzyFloat(d * d)
}

func (q *quadratic) Start() (boundedInt, error) {
	return boundedInt(q.lower), nil
}

func (q *quadratic) MoveOne(x boundedInt, d step) boundedInt {
	if d == greater {
		return x + 1
	}
	return x - 1
}

func (q *quadratic) Illegal(x boundedInt) bool {
	return int(x) < q.lower || int(x) > q.upper
}

func (q *quadratic) Directions() []step {
	return []step{greater, lesser}
}

func (q *quadratic) MaxPasses() int {
	if q.budget > 0 {
		return q.budget
	}
	return 999
}

func TestFindMin(t *testing.T) {
	tests := []struct {
		name string
		q    quadratic
		want int
	}{
		{"min inside range", quadratic{minAt: 0, lower: -10, upper: 10}, 0},
		{"min at interior point", quadratic{minAt: 10, lower: 0, upper: 20}, 10},
		{"min below range", quadratic{minAt: 0, lower: 5, upper: 10}, 5},
		{"min above range", quadratic{minAt: 0, lower: -10, upper: -5}, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New[boundedInt, fuzzyFloat, step](&tt.q).FindMin()
			if err != nil {
				t.Fatalf("FindMin: %v", err)
			}
			if int(got) != tt.want {
				t.Errorf("FindMin = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestFindMinDeterminism(t *testing.T) {
	q1 := quadratic{minAt: 3, lower: -50, upper: 50}
	q2 := quadratic{minAt: 3, lower: -50, upper: 50}
	a, err := New[boundedInt, fuzzyFloat, step](&q1).FindMin()
	if err != nil {
		t.Fatalf("FindMin: %v", err)
	}
	b, err := New[boundedInt, fuzzyFloat, step](&q2).FindMin()
	if err != nil {
		t.Fatalf("FindMin: %v", err)
	}
	if a != b {
		t.Errorf("identical problems gave different minima: %d vs %d", a, b)
	}
}

// flat has a constant output, so only the input tie-break drives the
// search; it must settle on the smallest legal input and terminate.
type flat struct {
	lower, upper int
}

func (f *flat) Function(x boundedInt) fuzzyFloat      { return 1 }
func (f *flat) Start() (boundedInt, error)            { return boundedInt(f.upper), nil }
func (f *flat) MoveOne(x boundedInt, d step) boundedInt {
	if d == greater {
		return x + 1
	}
	return x - 1
}
func (f *flat) Illegal(x boundedInt) bool { return int(x) < f.lower || int(x) > f.upper }
func (f *flat) Directions() []step        { return []step{greater, lesser} }
func (f *flat) MaxPasses() int            { return 999 }

func TestTieBreakDescendsToSmallestInput(t *testing.T) {
	got, err := New[boundedInt, fuzzyFloat, step](&flat{lower: -4, upper: 9}).FindMin()
	if err != nil {
		t.Fatalf("FindMin: %v", err)
	}
	if int(got) != -4 {
		t.Errorf("FindMin = %d; want -4 (tie-break on smaller input)", got)
	}
}

// pair is a two-dimensional input comparing lexicographically.
type pair [2]int

func (p pair) Compare(other pair) int {
	if d := p[0] - other[0]; d != 0 {
		return d
	}
	return p[1] - other[1]
}

// staircase keeps descending but its x <= y+1 / y <= x+1 constraints only
// admit one or two steps per direction, so every pass accepts a move and a
// small pass budget runs out long before the limit is reached.
type staircase struct {
	limit  int
	budget int
}

func (s *staircase) Function(p pair) fuzzyFloat { return fuzzyFloat(-(p[0] + p[1])) }
func (s *staircase) Start() (pair, error)       { return pair{0, 0}, nil }
func (s *staircase) MoveOne(p pair, d step) pair {
	if d == greater {
		return pair{p[0] + 1, p[1]}
	}
	return pair{p[0], p[1] + 1}
}
func (s *staircase) Illegal(p pair) bool {
	return p[0] < 0 || p[1] < 0 || p[0] > p[1]+1 || p[1] > p[0]+1 ||
		p[0] > s.limit || p[1] > s.limit
}
func (s *staircase) Directions() []step { return []step{greater, lesser} }
func (s *staircase) MaxPasses() int     { return s.budget }

func TestFindMinRejectsIllegalStart(t *testing.T) {
	// lower > upper makes the starting input illegal
	q := quadratic{minAt: 0, lower: 5, upper: 3}
	_, err := New[boundedInt, fuzzyFloat, step](&q).FindMin()
	if !errors.Is(err, pberrors.ErrConfiguration) {
		t.Errorf("FindMin err = %v; want ErrConfiguration", err)
	}
	var cerr *pberrors.ConfigurationError
	if !errors.As(err, &cerr) {
		t.Errorf("FindMin err = %T; want ConfigurationError", err)
	}
}

func TestNonConvergence(t *testing.T) {
	_, err := New[pair, fuzzyFloat, step](&staircase{limit: 1000, budget: 3}).FindMin()
	if !errors.Is(err, pberrors.ErrNonConvergence) {
		t.Errorf("FindMin err = %v; want ErrNonConvergence", err)
	}
}

func TestStaircaseConvergesWithinBudget(t *testing.T) {
	got, err := New[pair, fuzzyFloat, step](&staircase{limit: 5, budget: 999}).FindMin()
	if err != nil {
		t.Fatalf("FindMin: %v", err)
	}
	if want := (pair{5, 5}); got != want {
		t.Errorf("FindMin = %v; want %v", got, want)
	}
}

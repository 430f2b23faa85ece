package optimize

import (
	"math"

	"github.com/phrasebit/phrasebit/core/errors"
	"github.com/phrasebit/phrasebit/core/words"
)

const (
	// maxPasses is the pass budget before a search is abandoned.
	maxPasses = 1000

	// outputTolerance is the fuzzy-compare tolerance for total mean
	// lengths. Totals differing by less are considered equal.
	outputTolerance = 0.00001
)

// Distribution is an ordered list of per-slot bit widths. Distributions
// compare lexicographically, slot 0 first.
type Distribution []int

// Compare implements Comparable. Both distributions must have equal length.
func (d Distribution) Compare(other Distribution) int {
	for i := range d {
		if diff := d[i] - other[i]; diff != 0 {
			return diff
		}
	}
	return 0
}

// TotalMeanLength is the sum over slots of each provider's mean word
// length at the slot's width. Values within outputTolerance compare equal.
type TotalMeanLength float64

// Compare implements Comparable with a fuzzy tolerance.
func (l TotalMeanLength) Compare(other TotalMeanLength) int {
	if math.Abs(float64(l)-float64(other)) <= outputTolerance {
		return 0
	}
	if l < other {
		return -1
	}
	return 1
}

// Shift moves one bit from slot From to slot To. For a problem over five
// slots, Shift{1, 3} is the direction vector (0, -1, 0, 1, 0).
type Shift struct {
	From int
	To   int
}

// MeanLengthProblem distributes a fixed total number of bits over the word
// providers of a phrase so that the expected phrase length is minimal.
//
// A Distribution is legal when every slot has at least 1 and at most its
// provider's bit coverage, and the widths sum to the fixed total. The
// objective is the total mean word length over the words each width can
// reach. A provider's mean word length never decreases with width (widths
// index the shortest words first), which is what makes the local search
// land on a global minimum.
type MeanLengthProblem struct {
	providers []*words.Provider
	totalBits int
}

// NewMeanLengthProblem creates the problem for providers in slot order.
// At least two providers are required, and no more than totalBits.
func NewMeanLengthProblem(providers []*words.Provider, totalBits int) (*MeanLengthProblem, error) {
	if len(providers) < 2 {
		return nil, &errors.ConfigurationError{Reason: "must provide at least two word providers"}
	}
	if len(providers) > totalBits {
		return nil, &errors.ConfigurationError{Reason: "total bits must be at least the number of word providers"}
	}
	list := make([]*words.Provider, len(providers))
	copy(list, providers)
	return &MeanLengthProblem{providers: list, totalBits: totalBits}, nil
}

// Function sums each provider's mean word length over the 2^width shortest
// words it holds.
func (p *MeanLengthProblem) Function(input Distribution) TotalMeanLength {
	sum := 0.0
	for i, provider := range p.providers {
		mean, err := provider.MeanWordLength(1 << input[i])
		if err != nil {
			// unreachable for legal inputs; keep the search total
			return TotalMeanLength(math.Inf(1))
		}
		sum += mean
	}
	return TotalMeanLength(sum)
}

// Start assigns every slot one bit, then walks the slots in order giving
// each as many of the remaining bits as its coverage allows until all bits
// are placed.
func (p *MeanLengthProblem) Start() (Distribution, error) {
	dist := make(Distribution, len(p.providers))
	for i := range dist {
		dist[i] = 1
	}
	remaining := p.totalBits - len(p.providers)
	for i := 0; remaining > 0 && i < len(p.providers); i++ {
		bits := min(remaining+1, p.providers[i].BitCoverage())
		dist[i] = bits
		remaining = remaining - bits + 1
	}
	if remaining > 0 {
		return nil, &errors.InsufficientCoverageError{Missing: remaining}
	}
	return dist, nil
}

// MoveOne removes a bit from the shift's From slot and adds it to the To slot.
func (p *MeanLengthProblem) MoveOne(input Distribution, shift Shift) Distribution {
	next := make(Distribution, len(input))
	copy(next, input)
	next[shift.From]--
	next[shift.To]++
	return next
}

// Illegal reports whether a distribution breaks a constraint: a slot below
// 1 bit, a slot above its provider's coverage, or a wrong total.
func (p *MeanLengthProblem) Illegal(input Distribution) bool {
	sum := 0
	for i, bits := range input {
		if bits < 1 || bits > p.providers[i].BitCoverage() {
			return true
		}
		sum += bits
	}
	return sum != p.totalBits
}

// Directions enumerates every ordered slot pair (from, to), from != to,
// starting at (0, 1) and advancing the from index fastest. The fixed order
// keeps FindMin deterministic.
func (p *MeanLengthProblem) Directions() []Shift {
	n := len(p.providers)
	shifts := make([]Shift, 0, n*(n-1))
	start := Shift{0, 1}
	current := start
	for {
		shifts = append(shifts, current)
		from, to := current.From, current.To
		for {
			from = (from + 1) % n
			if from == 0 {
				to = (to + 1) % n
			}
			if from != to {
				break
			}
		}
		current = Shift{from, to}
		if current == start {
			return shifts
		}
	}
}

// MaxPasses returns the pass budget.
func (p *MeanLengthProblem) MaxPasses() int {
	return maxPasses
}

// OptimalDistribution is a convenience wrapper running the full search for
// providers and totalBits.
func OptimalDistribution(providers []*words.Provider, totalBits int) ([]int, error) {
	problem, err := NewMeanLengthProblem(providers, totalBits)
	if err != nil {
		return nil, err
	}
	dist, err := New[Distribution, TotalMeanLength, Shift](problem).FindMin()
	if err != nil {
		return nil, err
	}
	return dist, nil
}

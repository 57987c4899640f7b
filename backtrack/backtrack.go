// Package backtrack implements a generic depth-first constraint
// satisfaction solver. The solver itself knows nothing about the puzzle
// domain; it drives an explore/undo loop over cell locations supplied by
// a pluggable Strategy, keeping an explicit stack of the assignments made
// so far.
package backtrack

import (
	"github.com/rs/zerolog/log"
)

// Location addresses one cell of the map being solved: the backing cell
// storage of the owning map plus a linear index. The zero value is the
// not-found sentinel, returned by a Strategy when no unassigned cell or
// candidate value remains.
type Location struct {
	cells []int
	index int
}

// None is the not-found location sentinel.
var None = Location{}

// At returns a location addressing cells[index].
func At(cells []int, index int) Location {
	return Location{cells: cells, index: index}
}

// NotFound reports whether the location is the sentinel. Collaborators
// must check this before dereferencing.
func (l Location) NotFound() bool {
	return l.cells == nil
}

// Index returns the linear index into the owning map.
func (l Location) Index() int {
	return l.index
}

// Value returns the cell's current trial value (0 when unassigned).
func (l Location) Value() int {
	return l.cells[l.index]
}

// SetValue writes a trial value into the cell.
func (l Location) SetValue(v int) {
	l.cells[l.index] = v
}

// ClearValue resets the cell to unassigned.
func (l Location) ClearValue() {
	l.cells[l.index] = 0
}

// Strategy supplies the two domain-specific decisions of the search.
type Strategy interface {
	// NextLocation returns the next unassigned location in the
	// strategy's fixed scan order, or None when every cell is assigned.
	NextLocation() Location

	// NextCandidate returns the smallest untried legal value greater
	// than the cell's current trial value, writing it into the map as a
	// side effect. It returns 0 and clears the cell when no candidate
	// remains.
	NextCandidate(loc Location) int
}

// Solver runs the backtracking search. The map being solved is owned by
// the caller and reached only through the strategy; the solver mutates it
// in place.
type Solver struct {
	stack []Location
	strat Strategy
	steps int
}

// New returns a solver driven by the given strategy.
func New(strat Strategy) *Solver {
	return &Solver{strat: strat}
}

// Solve performs a single step of the search and reports whether further
// steps remain. It returns false either on success (no unassigned
// location left) or on exhaustive failure (the stack emptied without a
// solution).
func (s *Solver) Solve() bool {
	s.steps++
	if len(s.stack) == 0 {
		loc := s.strat.NextLocation()
		if loc.NotFound() {
			// Nothing to solve.
			return false
		}
		s.stack = append(s.stack, loc)
	}

	current := s.stack[len(s.stack)-1]
	val := s.strat.NextCandidate(current)

	if val == 0 {
		// Candidates exhausted: undo the assignment and backtrack.
		current.ClearValue()
		s.stack = s.stack[:len(s.stack)-1]
		return len(s.stack) > 0
	}

	next := s.strat.NextLocation()
	if next.NotFound() {
		// Every cell is assigned; puzzle complete.
		return false
	}
	s.stack = append(s.stack, next)
	return true
}

// Run repeatedly invokes Solve until no further work remains.
func (s *Solver) Run() {
	for s.Solve() {
	}
	log.Debug().Int("steps", s.steps).Int("stack-depth", len(s.stack)).
		Msg("backtracking-done")
}

// Steps returns the number of Solve steps taken so far.
func (s *Solver) Steps() int {
	return s.steps
}

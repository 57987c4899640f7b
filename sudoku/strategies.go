package sudoku

import (
	"github.com/plydeck/plydeck/backtrack"
)

// Linear is the backtracking strategy for the 1-D map: scan order is
// linear, and a candidate is legal iff it appears nowhere in the array.
type Linear struct {
	m *Map
}

// NewLinear returns a strategy solving m.
func NewLinear(m *Map) *Linear {
	return &Linear{m: m}
}

// NextLocation returns the first unassigned cell in linear order, or the
// not-found sentinel when every cell is assigned.
func (st *Linear) NextLocation() backtrack.Location {
	for i := 0; i < st.m.Len(); i++ {
		if st.m.At(i) == 0 {
			return st.m.Location(i)
		}
	}
	return backtrack.None
}

// NextCandidate tries values above the cell's current trial value in
// ascending order, writing the first one absent from the whole array into
// the map. On exhaustion it clears the cell and returns 0.
func (st *Linear) NextCandidate(loc backtrack.Location) int {
	for v := loc.Value() + 1; v <= MaxValue; v++ {
		if !st.m.Contains(v) {
			loc.SetValue(v)
			return v
		}
	}
	loc.ClearValue()
	return 0
}

// RowMajor is the backtracking strategy for the 9x9 grid: scan order is
// row-major, and a candidate is legal iff it is absent from the cell's
// row, column, and 3x3 box.
type RowMajor struct {
	g *Grid
}

// NewRowMajor returns a strategy solving g.
func NewRowMajor(g *Grid) *RowMajor {
	return &RowMajor{g: g}
}

// NextLocation returns the first unassigned cell in row-major order, or
// the not-found sentinel when every cell is assigned.
func (st *RowMajor) NextLocation() backtrack.Location {
	for i := 0; i < NumCells; i++ {
		if st.g.At(i) == 0 {
			return st.g.Location(i)
		}
	}
	return backtrack.None
}

// NextCandidate tries values above the cell's current trial value in
// ascending order, writing the first row/column/box-legal one into the
// grid. On exhaustion it clears the cell and returns 0.
func (st *RowMajor) NextCandidate(loc backtrack.Location) int {
	idx := loc.Index()
	for v := loc.Value() + 1; v <= MaxValue; v++ {
		if st.g.Legal(idx, v) {
			loc.SetValue(v)
			return v
		}
	}
	loc.ClearValue()
	return 0
}

// Package sudoku provides the cell maps and backtracking strategies for
// sudoku-style constraint puzzles: a 9x9 grid with row/column/box
// uniqueness, and a 1-D variant where every value in the array must be
// unique.
package sudoku

import (
	"errors"
	"fmt"
	"strings"

	"github.com/plydeck/plydeck/backtrack"
)

const (
	// Dim is the grid dimension.
	Dim = 9
	// BoxDim is the dimension of a sub-box.
	BoxDim = 3
	// NumCells is the total cell count of a grid.
	NumCells = Dim * Dim
	// MaxValue is the largest legal cell value. 0 means empty, so 0 is
	// usable as an unambiguous exhaustion sentinel.
	MaxValue = 9
)

var (
	ErrBadCell       = errors.New("sudoku: cell index out of range")
	ErrBadValue      = errors.New("sudoku: cell value out of range")
	ErrBadGridString = errors.New("sudoku: grid string must have 81 cells")
)

// Map is a 1-D array of cells with a global uniqueness constraint: a
// value may appear at most once anywhere in the array. The backing slice
// is owned by the caller and mutated in place by the solver.
type Map struct {
	cells []int
}

// NewMap wraps the given cells. The slice is referenced, not copied.
func NewMap(cells []int) *Map {
	return &Map{cells: cells}
}

// Len returns the number of cells.
func (m *Map) Len() int { return len(m.cells) }

// At returns the value of cell i.
func (m *Map) At(i int) int { return m.cells[i] }

// Set assigns v to cell i.
func (m *Map) Set(i, v int) { m.cells[i] = v }

// Clear empties cell i.
func (m *Map) Clear(i int) { m.cells[i] = 0 }

// Location returns a solver location for cell i.
func (m *Map) Location(i int) backtrack.Location {
	return backtrack.At(m.cells, i)
}

// Contains reports whether v appears anywhere in the map.
func (m *Map) Contains(v int) bool {
	for _, c := range m.cells {
		if c == v {
			return true
		}
	}
	return false
}

// Solved reports whether every cell is assigned and all values are
// distinct and in [1, MaxValue].
func (m *Map) Solved() bool {
	var seen [MaxValue + 1]bool
	for _, c := range m.cells {
		if c < 1 || c > MaxValue || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

func (m *Map) String() string {
	parts := make([]string, len(m.cells))
	for i, c := range m.cells {
		parts[i] = fmt.Sprintf("%d", c)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Grid is a 9x9 sudoku board stored row-major. Cell values are 0 (empty)
// or 1..9; legality requires a value to be absent from its row, column,
// and enclosing 3x3 box.
type Grid struct {
	cells []int
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{cells: make([]int, NumCells)}
}

// GridFrom wraps an existing 81-cell slice. The slice is referenced, not
// copied.
func GridFrom(cells []int) (*Grid, error) {
	if len(cells) != NumCells {
		return nil, fmt.Errorf("%w: got %d", ErrBadGridString, len(cells))
	}
	return &Grid{cells: cells}, nil
}

// ParseGrid builds a grid from an 81-character row-major string. Digits
// 1-9 are clues; '0' and '.' are empty.
func ParseGrid(s string) (*Grid, error) {
	if len(s) != NumCells {
		return nil, fmt.Errorf("%w: got %d characters", ErrBadGridString, len(s))
	}
	g := NewGrid()
	for i := 0; i < NumCells; i++ {
		switch {
		case s[i] == '.' || s[i] == '0':
			// empty
		case s[i] >= '1' && s[i] <= '9':
			g.cells[i] = int(s[i] - '0')
		default:
			return nil, fmt.Errorf("%w: %q at cell %d", ErrBadValue, s[i], i)
		}
	}
	return g, nil
}

// At returns the value of cell i.
func (g *Grid) At(i int) int { return g.cells[i] }

// Set assigns v to cell i.
func (g *Grid) Set(i, v int) { g.cells[i] = v }

// Clear empties cell i.
func (g *Grid) Clear(i int) { g.cells[i] = 0 }

// Location returns a solver location for cell i.
func (g *Grid) Location(i int) backtrack.Location {
	return backtrack.At(g.cells, i)
}

// Copy returns a deep copy of the grid.
func (g *Grid) Copy() *Grid {
	cells := make([]int, NumCells)
	copy(cells, g.cells)
	return &Grid{cells: cells}
}

// Legal reports whether placing v at cell idx would leave v absent from
// the cell's row, column, and 3x3 box. The cell itself is ignored.
func (g *Grid) Legal(idx, v int) bool {
	row := idx / Dim
	col := idx % Dim

	for i := 0; i < Dim; i++ {
		if c := row*Dim + i; c != idx && g.cells[c] == v {
			return false
		}
		if c := i*Dim + col; c != idx && g.cells[c] == v {
			return false
		}
	}

	boxRow := row / BoxDim * BoxDim
	boxCol := col / BoxDim * BoxDim
	for j := 0; j < BoxDim; j++ {
		for i := 0; i < BoxDim; i++ {
			if c := (boxRow+j)*Dim + (boxCol + i); c != idx && g.cells[c] == v {
				return false
			}
		}
	}
	return true
}

// Solved reports whether every cell is assigned and every row, column,
// and box holds each of 1..9 exactly once.
func (g *Grid) Solved() bool {
	for i, c := range g.cells {
		if c < 1 || c > MaxValue || !g.Legal(i, c) {
			return false
		}
	}
	return true
}

// String returns the row-major 81-character form, with '.' for empties.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, c := range g.cells {
		if c == 0 {
			sb.WriteByte('.')
		} else {
			sb.WriteByte(byte('0' + c))
		}
	}
	return sb.String()
}

// ToDisplayText returns a drawing of the grid with box separators.
func (g *Grid) ToDisplayText() string {
	var sb strings.Builder
	for row := 0; row < Dim; row++ {
		if row > 0 && row%BoxDim == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for col := 0; col < Dim; col++ {
			if col > 0 && col%BoxDim == 0 {
				sb.WriteString("| ")
			}
			c := g.cells[row*Dim+col]
			if c == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + c))
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

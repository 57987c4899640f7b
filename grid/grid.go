// Package grid implements a 3x3 tic-tac-toe board with the operations
// needed by an adversarial game-tree search: placing marks, enumerating
// empty squares, and detecting wins.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Mark is a player's piece on the board.
type Mark byte

const (
	X     Mark = 'x'
	O     Mark = 'o'
	Empty Mark = ' '
)

const (
	// Dim is the board dimension.
	Dim = 3
	// NumSquares is the total number of squares.
	NumSquares = Dim * Dim
)

var (
	ErrBadSquare = errors.New("grid: square index out of range")
	ErrBadMark   = errors.New("grid: unrecognized mark")
)

// winLines are all row, column, and diagonal index triples.
var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Grid is a tic-tac-toe board. It is a value type; search code copies
// grids freely instead of mutating a shared state across branches.
type Grid struct {
	squares [NumSquares]Mark
}

// New returns an empty grid.
func New() Grid {
	var g Grid
	for i := range g.squares {
		g.squares[i] = Empty
	}
	return g
}

// Parse builds a grid from a 9-character string in row-major order.
// 'x' and 'o' are marks; ' ', '.', '_', and '-' all mean empty.
func Parse(s string) (Grid, error) {
	g := New()
	if len(s) != NumSquares {
		return g, fmt.Errorf("grid: position must be %d characters, got %d",
			NumSquares, len(s))
	}
	for i := 0; i < NumSquares; i++ {
		switch s[i] {
		case 'x', 'X':
			g.squares[i] = X
		case 'o', 'O':
			g.squares[i] = O
		case ' ', '.', '_', '-':
			g.squares[i] = Empty
		default:
			return New(), fmt.Errorf("%w: %q", ErrBadMark, s[i])
		}
	}
	return g, nil
}

// At returns the mark at square i.
func (g Grid) At(i int) (Mark, error) {
	if i < 0 || i >= NumSquares {
		return Empty, fmt.Errorf("%w: %d", ErrBadSquare, i)
	}
	return g.squares[i], nil
}

// Set places a mark at square i in place. Use Place for copy semantics
// during search.
func (g *Grid) Set(i int, m Mark) {
	g.squares[i] = m
}

// Clear empties square i.
func (g *Grid) Clear(i int) {
	g.squares[i] = Empty
}

// Place returns a copy of g with mark m played at square i. The receiver
// is unchanged.
func (g Grid) Place(i int, m Mark) Grid {
	g.squares[i] = m
	return g
}

// EmptyIndices returns the indices of all empty squares in ascending
// order. This is the move enumeration order searched by the engine, so
// it must stay deterministic.
func (g Grid) EmptyIndices() []int {
	var idxs []int
	for i, sq := range g.squares {
		if sq == Empty {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// Winning reports whether player has three in a row, column, or diagonal.
func (g Grid) Winning(player Mark) bool {
	for _, line := range winLines {
		if g.squares[line[0]] == player &&
			g.squares[line[1]] == player &&
			g.squares[line[2]] == player {
			return true
		}
	}
	return false
}

// Full reports whether no empty squares remain.
func (g Grid) Full() bool {
	for _, sq := range g.squares {
		if sq == Empty {
			return false
		}
	}
	return true
}

// String renders the grid in the compact bracket form used in debug
// output, e.g. "[x,o, , ,x, , , ,o]".
func (g Grid) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, sq := range g.squares {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(byte(sq))
	}
	sb.WriteByte(']')
	return sb.String()
}

// ToDisplayText returns a drawing of the board suitable for the shell.
func (g Grid) ToDisplayText() string {
	var sb strings.Builder
	for row := 0; row < Dim; row++ {
		if row > 0 {
			sb.WriteString("\n---+---+---\n")
		}
		for col := 0; col < Dim; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}
			sb.WriteByte(' ')
			sb.WriteByte(byte(g.squares[row*Dim+col]))
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Opponent returns the other player's mark.
func Opponent(m Mark) Mark {
	if m == X {
		return O
	}
	return X
}

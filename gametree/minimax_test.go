package gametree

import (
	"errors"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/plydeck/plydeck/grid"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func mustParse(t *testing.T, pos string) grid.Grid {
	t.Helper()
	g, err := grid.Parse(pos)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestMinimaxAlreadyWon(t *testing.T) {
	is := is.New(t)
	g := mustParse(t, "xxx.oo...")

	root := Minimax(g, grid.O, grid.X, grid.O)
	is.Equal(root.Score(), WinScore)
	is.True(root.Terminal())
	is.Equal(root.BestIndex(), -1)
}

func TestMinimaxWinInOne(t *testing.T) {
	is := is.New(t)
	g := mustParse(t, "xx..oo...")

	root := Minimax(g, grid.X, grid.X, grid.O)
	is.Equal(root.Score(), WinScore)

	best, err := root.Best()
	is.NoErr(err)
	is.Equal(best.SpotIndex(), 2)
	is.True(best.State().Winning(grid.X))
}

func TestMinimaxMinimizerWinInOne(t *testing.T) {
	is := is.New(t)
	// o to move completes the top row; the minimizer's win scores -10.
	g := mustParse(t, "oo..x...x")

	root := Minimax(g, grid.O, grid.X, grid.O)
	is.Equal(root.Score(), LossScore)

	best, err := root.Best()
	is.NoErr(err)
	is.Equal(best.SpotIndex(), 2)
	is.True(best.State().Winning(grid.O))
}

func TestMinimaxEmptyBoardDraws(t *testing.T) {
	is := is.New(t)
	root := Minimax(grid.New(), grid.X, grid.X, grid.O)

	// Perfect play from the empty board is a draw.
	is.Equal(root.Score(), DrawScore)
	is.Equal(len(root.Children()), 9)

	best, err := root.Best()
	is.NoErr(err)
	// Optimal openings are the corners and the center.
	spot := best.SpotIndex()
	is.True(spot == 0 || spot == 2 || spot == 4 || spot == 6 || spot == 8)
}

func TestMinimaxFullBoardDraw(t *testing.T) {
	is := is.New(t)
	g := mustParse(t, "xxoooxxxo")

	root := Minimax(g, grid.X, grid.X, grid.O)
	is.Equal(root.Score(), DrawScore)
	is.True(root.Terminal())
}

func TestTieBreakFirstMatch(t *testing.T) {
	is := is.New(t)
	// x can win at square 1 (top row) or square 6 (left column). The
	// first winning child in enumeration order must be chosen.
	g := mustParse(t, "x.xx...oo")

	root := Minimax(g, grid.X, grid.X, grid.O)
	is.Equal(root.Score(), WinScore)
	is.Equal(root.BestIndex(), 0)

	best, err := root.Best()
	is.NoErr(err)
	is.Equal(best.SpotIndex(), 1)
}

// solvePositions is a grab bag of reachable positions used by the
// equivalence tests.
var solvePositions = []struct {
	pos    string
	toMove grid.Mark
}{
	{".........", grid.X},
	{"x........", grid.O},
	{"x...o....", grid.X},
	{"xo.......", grid.X},
	{"x.o.x...o", grid.X},
	{"xx..oo...", grid.X},
	{"oo..x...x", grid.O},
	{"xoxo.....", grid.X},
	{"xoxoxo...", grid.X},
	{"x.o.o.x.x", grid.O},
}

func TestAlphaBetaEquivalence(t *testing.T) {
	is := is.New(t)
	for _, tc := range solvePositions {
		g := mustParse(t, tc.pos)
		plain := Minimax(g, tc.toMove, grid.X, grid.O)
		pruned := AlphaBeta(g, tc.toMove, grid.X, grid.O)

		// Pruning must never change the decision's value.
		is.Equal(pruned.Score(), plain.Score())
	}
}

// checkShape verifies that every expanded node has exactly one child per
// legal move of its state.
func checkShape(t *testing.T, n *Node[grid.Grid]) {
	t.Helper()
	if n.Pruned() {
		if len(n.Children()) != 0 {
			t.Fatalf("pruned placeholder has %d children", len(n.Children()))
		}
		return
	}
	empties := n.State().EmptyIndices()
	if n.Terminal() {
		return
	}
	if len(n.Children()) != len(empties) {
		t.Fatalf("node %v: %d children for %d legal moves",
			n, len(n.Children()), len(empties))
	}
	for i, c := range n.Children() {
		if c.SpotIndex() != empties[i] {
			t.Fatalf("child %d played %d, want %d", i, c.SpotIndex(), empties[i])
		}
		checkShape(t, c)
	}
}

func TestAlphaBetaTreeShape(t *testing.T) {
	for _, tc := range solvePositions {
		g := mustParse(t, tc.pos)
		root := AlphaBeta(g, tc.toMove, grid.X, grid.O)
		checkShape(t, root)
	}
}

func TestAlphaBetaActuallyPrunes(t *testing.T) {
	is := is.New(t)
	g := grid.New()

	plain := NewSolver[grid.Grid](grid.X, grid.O)
	plain.Solve(g, grid.X)

	pruned := NewSolver[grid.Grid](grid.X, grid.O)
	pruned.SetPruning(true)
	pruned.Solve(g, grid.X)

	is.True(pruned.ExpandedNodes() < plain.ExpandedNodes())
	is.True(pruned.PrunedBranches() > 0)
}

func TestChildOutOfRange(t *testing.T) {
	is := is.New(t)
	g := mustParse(t, "xx..oo...")
	root := Minimax(g, grid.X, grid.X, grid.O)

	_, err := root.Child(len(root.Children()))
	is.True(errors.Is(err, ErrNoSuchChild))
	_, err = root.Child(-1)
	is.True(errors.Is(err, ErrNoSuchChild))
}

func TestSolverReusable(t *testing.T) {
	is := is.New(t)
	s := NewSolver[grid.Grid](grid.X, grid.O)

	root := s.Solve(mustParse(t, "xx..oo..."), grid.X)
	is.Equal(root.Score(), WinScore)

	root = s.Solve(mustParse(t, "oo..x...x"), grid.O)
	is.Equal(root.Score(), LossScore)
	is.True(s.ExpandedNodes() != 0)
	is.Equal(s.Root(), root)
}

func BenchmarkMinimaxEmptyBoard(b *testing.B) {
	g := grid.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Minimax(g, grid.X, grid.X, grid.O)
	}
}

func BenchmarkAlphaBetaEmptyBoard(b *testing.B) {
	g := grid.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AlphaBeta(g, grid.X, grid.X, grid.O)
	}
}

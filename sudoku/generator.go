package sudoku

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// MinClues is the fewest clues a generated puzzle may keep. 17 is the
// known minimum for a uniquely solvable 9x9 sudoku.
const MinClues = 17

var ErrBadClueCount = errors.New("sudoku: clue count out of range")

// GenerateSolved fills an empty grid by backtracking with a randomized
// candidate order drawn from rng. The generator owns no hidden random
// state; callers pass their own seeded rng for reproducibility.
func GenerateSolved(rng *frand.RNG) *Grid {
	g := NewGrid()
	// A randomized fill from an empty grid always succeeds.
	fillFrom(g, 0, rng)
	return g
}

func fillFrom(g *Grid, idx int, rng *frand.RNG) bool {
	if idx == NumCells {
		return true
	}
	for _, p := range rng.Perm(MaxValue) {
		v := p + 1
		if !g.Legal(idx, v) {
			continue
		}
		g.Set(idx, v)
		if fillFrom(g, idx+1, rng) {
			return true
		}
		g.Clear(idx)
	}
	return false
}

// Generate produces a puzzle with the given number of clues by punching
// holes in a random solved grid. The result is always solvable; it is not
// guaranteed to have a unique solution.
func Generate(rng *frand.RNG, clues int) (*Grid, error) {
	if clues < MinClues || clues > NumCells {
		return nil, fmt.Errorf("%w: %d (want %d..%d)", ErrBadClueCount,
			clues, MinClues, NumCells)
	}
	g := GenerateSolved(rng)
	order := rng.Perm(NumCells)
	for _, idx := range order[:NumCells-clues] {
		g.Clear(idx)
	}
	log.Debug().Int("clues", clues).Msg("generated-puzzle")
	return g, nil
}

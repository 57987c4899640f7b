// Package gametree implements generic two-player zero-sum game tree
// search: minimax with an optional alpha-beta pruning variant. The search
// materializes the full decision tree, one child per legal move at every
// expanded node, so callers can inspect or visualize the search rather
// than just read off the chosen move.
package gametree

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if α ≥ β then
                break (* α cut-off *)
        return value
(* Initial call *)
alphabeta(origin, depth, −∞, +∞, TRUE)
**/

// Utilities of finished games.
const (
	WinScore  = 10
	LossScore = -10
	DrawScore = 0
)

// State is a two-player, perfect-information game position. States are
// values: Place returns a new state and never mutates the receiver, so
// sibling branches of the search cannot interfere.
type State[S, P any] interface {
	// Winning reports whether player has already won.
	Winning(player P) bool
	// EmptyIndices enumerates the legal moves in a fixed, deterministic
	// order. The search visits moves in exactly this order.
	EmptyIndices() []int
	// Place returns the state after player moves at board index i.
	Place(i int, player P) S
}

// Solver searches a game tree for fixed maximizer/minimizer identities.
type Solver[S State[S, P], P comparable] struct {
	maximizer P
	minimizer P
	pruning   bool

	rootNode *Node[S]
	expanded int
	cutoffs  int
}

// NewSolver returns a solver for the given player identities. Pruning is
// off by default; the unpruned search expands every reachable subtree.
func NewSolver[S State[S, P], P comparable](maximizer, minimizer P) *Solver[S, P] {
	return &Solver[S, P]{maximizer: maximizer, minimizer: minimizer}
}

// SetPruning toggles alpha-beta pruning. Pruning never changes the root
// score, only the number of nodes expanded.
func (s *Solver[S, P]) SetPruning(on bool) {
	s.pruning = on
}

// Root returns the tree from the last Solve call.
func (s *Solver[S, P]) Root() *Node[S] {
	return s.rootNode
}

// ExpandedNodes returns the number of nodes expanded by the last Solve.
func (s *Solver[S, P]) ExpandedNodes() int {
	return s.expanded
}

// PrunedBranches returns the number of placeholder leaves the last Solve
// attached in place of cut-off subtrees.
func (s *Solver[S, P]) PrunedBranches() int {
	return s.cutoffs
}

// Solve searches the game from the given state with toMove to play and
// returns the root of the materialized tree. The root's score is the
// game-theoretic value of the position; its best index identifies the
// optimal move.
func (s *Solver[S, P]) Solve(state S, toMove P) *Node[S] {
	log.Debug().Bool("pruning", s.pruning).Msg("gametree-solve-config")
	tstart := time.Now()
	s.expanded = 0
	s.cutoffs = 0

	if s.pruning {
		s.rootNode = s.alphabeta(state, toMove, math.MinInt, math.MaxInt)
	} else {
		s.rootNode = s.minimax(state, toMove)
	}

	log.Debug().Ints("child-scores",
		lo.Map(s.rootNode.children, func(c *Node[S], _ int) int { return c.score })).
		Msg("root-children")
	log.Info().
		Int("expanded-nodes", s.expanded).
		Int("pruned-branches", s.cutoffs).
		Int("root-score", s.rootNode.score).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("solve-returning")
	return s.rootNode
}

func (s *Solver[S, P]) terminal(state S, score int) *Node[S] {
	s.expanded++
	return &Node[S]{state: state, score: score, bestIndex: -1, spotIndex: -1}
}

// minimax searches without pruning, materializing every reachable
// subtree. Ties break toward the first child in enumeration order.
func (s *Solver[S, P]) minimax(state S, player P) *Node[S] {
	// Terminal tests come before move enumeration so a full board with a
	// winner is scored as the win, and a full board without one as a draw.
	if state.Winning(s.maximizer) {
		return s.terminal(state, WinScore)
	}
	if state.Winning(s.minimizer) {
		return s.terminal(state, LossScore)
	}
	empties := state.EmptyIndices()
	if len(empties) == 0 {
		return s.terminal(state, DrawScore)
	}
	s.expanded++

	maximizing := player == s.maximizer
	bestScore := math.MaxInt
	if maximizing {
		bestScore = math.MinInt
	}
	bestIdx := 0
	children := make([]*Node[S], 0, len(empties))

	for idx, spot := range empties {
		var child *Node[S]
		if maximizing {
			child = s.minimax(state.Place(spot, player), s.minimizer)
			if child.score > bestScore {
				bestScore = child.score
				bestIdx = idx
			}
		} else {
			child = s.minimax(state.Place(spot, player), s.maximizer)
			if child.score < bestScore {
				bestScore = child.score
				bestIdx = idx
			}
		}
		child.spotIndex = spot
		children = append(children, child)
	}

	return &Node[S]{
		state:     state,
		score:     bestScore,
		children:  children,
		bestIndex: bestIdx,
		spotIndex: -1,
	}
}

// alphabeta searches with pruning. Once alpha meets beta the remaining
// sibling moves are not recursed; each becomes a placeholder leaf
// carrying the pruning bound, so the tree keeps one child per legal move
// even though pruned subtrees are never expanded.
func (s *Solver[S, P]) alphabeta(state S, player P, alpha, beta int) *Node[S] {
	if state.Winning(s.maximizer) {
		return s.terminal(state, WinScore)
	}
	if state.Winning(s.minimizer) {
		return s.terminal(state, LossScore)
	}
	empties := state.EmptyIndices()
	if len(empties) == 0 {
		return s.terminal(state, DrawScore)
	}
	s.expanded++

	maximizing := player == s.maximizer
	bestScore := math.MaxInt
	if maximizing {
		bestScore = math.MinInt
	}
	bestIdx := 0
	children := make([]*Node[S], 0, len(empties))
	cutoff := false

	for idx, spot := range empties {
		next := state.Place(spot, player)
		var child *Node[S]

		if !cutoff {
			if maximizing {
				child = s.alphabeta(next, s.minimizer, alpha, beta)
				if child.score > bestScore {
					bestScore = child.score
					bestIdx = idx
				}
				if bestScore > alpha {
					alpha = bestScore
				}
				if alpha >= beta {
					cutoff = true // β cut-off
				}
			} else {
				child = s.alphabeta(next, s.maximizer, alpha, beta)
				if child.score < bestScore {
					bestScore = child.score
					bestIdx = idx
				}
				if bestScore < beta {
					beta = bestScore
				}
				if beta <= alpha {
					cutoff = true // α cut-off
				}
			}
		} else {
			// Placeholder for a branch the cut-off proved irrelevant.
			bound := beta
			if maximizing {
				bound = alpha
			}
			child = &Node[S]{state: next, score: bound, bestIndex: -1, pruned: true}
			s.cutoffs++
		}

		child.spotIndex = spot
		children = append(children, child)
	}

	return &Node[S]{
		state:     state,
		score:     bestScore,
		children:  children,
		bestIndex: bestIdx,
		spotIndex: -1,
	}
}

// Minimax runs an unpruned search from state with player to move.
// Maximizer wins score +10, minimizer wins -10, draws 0.
func Minimax[S State[S, P], P comparable](state S, player, maximizer, minimizer P) *Node[S] {
	s := NewSolver[S](maximizer, minimizer)
	return s.Solve(state, player)
}

// AlphaBeta runs a pruned search from state with player to move. The root
// score always equals the unpruned Minimax score for the same input.
func AlphaBeta[S State[S, P], P comparable](state S, player, maximizer, minimizer P) *Node[S] {
	s := NewSolver[S](maximizer, minimizer)
	s.SetPruning(true)
	return s.Solve(state, player)
}

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/plydeck/plydeck/backtrack"
	"github.com/plydeck/plydeck/config"
	"github.com/plydeck/plydeck/gametree"
	"github.com/plydeck/plydeck/grid"
	"github.com/plydeck/plydeck/sudoku"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func searchBest(g grid.Grid, player grid.Mark, pruning bool) *gametree.Node[grid.Grid] {
	solver := gametree.NewSolver[grid.Grid](player, grid.Opponent(player))
	solver.SetPruning(pruning)
	root := solver.Solve(g, player)
	log.Debug().Int("expanded", solver.ExpandedNodes()).
		Int("pruned", solver.PrunedBranches()).Msg("search-stats")
	return root
}

func shellLoop(sig chan os.Signal, cfg *config.Config) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mplydeck>\033[0m ",
		HistoryFile:     cfg.HistoryFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})

	if err != nil {
		panic(err)
	}
	defer l.Close()

	var curGrid grid.Grid
	var haveGrid bool
	var curPuzzle *sudoku.Grid
	var lastTree *gametree.Node[grid.Grid]
	pruning := cfg.Pruning
	rng := frand.New()

readlineLoop:
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "ttt "):
			curGrid, err = grid.Parse(strings.TrimSpace(line[4:]))
			if err != nil {
				showMessage("Error: "+err.Error(), l.Stderr())
				break
			}
			haveGrid = true
			showMessage(curGrid.ToDisplayText(), l.Stderr())

		case strings.HasPrefix(line, "best "):
			if !haveGrid {
				showMessage("Please load a position first with the `ttt` command",
					l.Stderr())
				break
			}
			playerStr := strings.TrimSpace(line[5:])
			if playerStr != "x" && playerStr != "o" {
				showMessage("Player must be x or o", l.Stderr())
				break
			}
			player := grid.X
			if playerStr == "o" {
				player = grid.O
			}
			lastTree = searchBest(curGrid, player, pruning)
			best, err := lastTree.Best()
			if err != nil {
				showMessage("Position is already terminal", l.Stderr())
				break
			}
			showMessage(fmt.Sprintf("value: %d  best move: square %d",
				lastTree.Score(), best.SpotIndex()), l.Stderr())
			showMessage(best.State().ToDisplayText(), l.Stderr())

		case strings.HasPrefix(line, "pruning "):
			pruning = strings.TrimSpace(line[8:]) == "on"
			showMessage(fmt.Sprintf("pruning: %v", pruning), l.Stderr())

		case line == "tree":
			if lastTree == nil {
				showMessage("No search has been run yet", l.Stderr())
				break
			}
			showMessage(gametree.Serialize(lastTree), l.Stderr())

		case strings.HasPrefix(line, "dot "):
			if lastTree == nil {
				showMessage("No search has been run yet", l.Stderr())
				break
			}
			outFile := strings.TrimSpace(line[4:])
			if err := gametree.SaveDotFile(lastTree, outFile); err != nil {
				showMessage("Error: "+err.Error(), l.Stderr())
				break
			}
			showMessage("Wrote "+outFile, l.Stderr())

		case strings.HasPrefix(line, "sudoku "):
			curPuzzle, err = sudoku.ParseGrid(strings.TrimSpace(line[7:]))
			if err != nil {
				showMessage("Error: "+err.Error(), l.Stderr())
				break
			}
			showMessage(curPuzzle.ToDisplayText(), l.Stderr())

		case line == "solve":
			if curPuzzle == nil {
				showMessage("Please load a puzzle first with the `sudoku` command",
					l.Stderr())
				break
			}
			solver := backtrack.New(sudoku.NewRowMajor(curPuzzle))
			solver.Run()
			if !curPuzzle.Solved() {
				showMessage("No solution exists for this puzzle", l.Stderr())
				break
			}
			showMessage(fmt.Sprintf("solved in %d steps", solver.Steps()), l.Stderr())
			showMessage(curPuzzle.ToDisplayText(), l.Stderr())

		case line == "gen" || strings.HasPrefix(line, "gen "):
			clues := cfg.DefaultClues
			if strings.HasPrefix(line, "gen ") {
				clues, err = strconv.Atoi(strings.TrimSpace(line[4:]))
				if err != nil {
					showMessage("Error: "+err.Error(), l.Stderr())
					break
				}
			}
			curPuzzle, err = sudoku.Generate(rng, clues)
			if err != nil {
				showMessage("Error: "+err.Error(), l.Stderr())
				break
			}
			showMessage(curPuzzle.ToDisplayText(), l.Stderr())

		case line == "bye" || line == "exit":
			sig <- syscall.SIGINT
			break readlineLoop
		case line == "help":
			usage(l.Stderr())
		case line == "":
		default:
			log.Debug().Msgf("you said: %v", strconv.Quote(line))
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

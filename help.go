package main

import (
	"io"
)

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "ttt <pos> - load a tic-tac-toe position; 9 chars, row-major,\n")
	io.WriteString(w, "    'x', 'o', and '.' for empty (e.g. ttt x...o....)\n")
	io.WriteString(w, "best <x|o> - search the loaded position with that player to move;\n")
	io.WriteString(w, "    shows the optimal move and the game value\n")
	io.WriteString(w, "pruning <on|off> - toggle alpha-beta pruning\n")
	io.WriteString(w, "tree - print the last search tree in its preorder text form\n")
	io.WriteString(w, "dot <path> - save the last search tree as a graphviz dot file\n")
	io.WriteString(w, "sudoku <puzzle> - load a sudoku; 81 chars, row-major, digits and\n")
	io.WriteString(w, "    '.' or '0' for empty\n")
	io.WriteString(w, "solve - solve the loaded sudoku by backtracking\n")
	io.WriteString(w, "gen [clues] - generate a sudoku puzzle\n")
	io.WriteString(w, "exit - quit\n")
}

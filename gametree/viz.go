package gametree

import (
	"fmt"
	"os"
)

// Attempt to visualize the search tree with dot

type dotfile struct {
	declarations []string
	directives   []string
}

func genDotFile[S any](n *Node[S], d *dotfile) {
	if len(n.children) == 0 {
		// terminal node; declared by its parent
		return
	}

	parent := n
	for _, child := range parent.children {
		label := fmt.Sprintf("spot: %v\\nscore: %v", child.spotIndex, child.score)
		if child.pruned {
			label += "\\n(pruned)"
		}
		decl := fmt.Sprintf("n_%p [label=\"%v\"];", child, label)
		conn := fmt.Sprintf("n_%p -> n_%p;", parent, child)
		d.declarations = append(d.declarations, decl)
		d.directives = append(d.directives, conn)
		genDotFile(child, d)
	}
}

// SaveDotFile writes the tree rooted at root to outFile in graphviz dot
// format.
func SaveDotFile[S any](root *Node[S], outFile string) error {
	d := &dotfile{}
	genDotFile(root, d)

	out := ""
	out += fmt.Sprintf("digraph {\n")
	out += fmt.Sprintf(" n_%p [label=\"(root)\\nscore: %v\"]\n", root, root.score)
	for _, decl := range d.declarations {
		out += fmt.Sprintf(" %v\n", decl)
	}
	out += fmt.Sprintf("\n")
	for _, dir := range d.directives {
		out += fmt.Sprintf(" %v\n", dir)
	}
	out += fmt.Sprint("}\n")
	return os.WriteFile(outFile, []byte(out), 0644)
}

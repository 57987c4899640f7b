package gametree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// The debug text form of a tree is a recursive, whitespace-delimited
// preorder encoding of node scores:
//
//	score " {" children_count " " child... "} "
//
// A terminal scoring 0 is "0 {0 } ". The encoding is self-describing and
// round-trip safe.

var ErrBadTreeString = errors.New("gametree: malformed tree string")

// Serialize encodes the score tree rooted at n.
func Serialize[S any](n *Node[S]) string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}

func writeNode[S any](sb *strings.Builder, n *Node[S]) {
	fmt.Fprintf(sb, "%d {%d ", n.score, len(n.children))
	for _, c := range n.children {
		writeNode(sb, c)
	}
	sb.WriteString("} ")
}

// Deserialize decodes a score tree. Only scores and tree shape survive a
// round trip; states, spot indices, and best-child indices are not part
// of the encoding.
func Deserialize[S any](s string) (*Node[S], error) {
	toks := strings.Fields(s)
	n, rest, err := readNode[S](toks)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing tokens", ErrBadTreeString, len(rest))
	}
	return n, nil
}

func readNode[S any](toks []string) (*Node[S], []string, error) {
	if len(toks) < 3 {
		return nil, nil, fmt.Errorf("%w: truncated input", ErrBadTreeString)
	}
	score, err := strconv.Atoi(toks[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: bad score %q", ErrBadTreeString, toks[0])
	}
	if !strings.HasPrefix(toks[1], "{") {
		return nil, nil, fmt.Errorf("%w: expected '{', got %q", ErrBadTreeString, toks[1])
	}
	count, err := strconv.Atoi(toks[1][1:])
	if err != nil || count < 0 {
		return nil, nil, fmt.Errorf("%w: bad child count %q", ErrBadTreeString, toks[1])
	}

	n := &Node[S]{score: score, bestIndex: -1, spotIndex: -1}
	rest := toks[2:]
	for i := 0; i < count; i++ {
		var child *Node[S]
		child, rest, err = readNode[S](rest)
		if err != nil {
			return nil, nil, err
		}
		n.children = append(n.children, child)
	}
	if len(rest) == 0 || rest[0] != "}" {
		return nil, nil, fmt.Errorf("%w: expected '}'", ErrBadTreeString)
	}
	return n, rest[1:], nil
}

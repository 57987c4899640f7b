package gametree

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/plydeck/plydeck/grid"
)

func TestSerializeLeaf(t *testing.T) {
	is := is.New(t)
	n := &Node[grid.Grid]{score: 7, bestIndex: -1, spotIndex: -1}
	is.Equal(Serialize(n), "7 {0 } ")
}

func TestSerializeSmallTree(t *testing.T) {
	is := is.New(t)
	n := &Node[grid.Grid]{
		score: 0,
		children: []*Node[grid.Grid]{
			{score: 10, bestIndex: -1},
			{score: -10, bestIndex: -1},
		},
	}
	is.Equal(Serialize(n), "0 {2 10 {0 } -10 {0 } } ")
}

func TestRoundTrip(t *testing.T) {
	is := is.New(t)
	g, err := grid.Parse("xoxo.....")
	is.NoErr(err)

	root := Minimax(g, grid.X, grid.X, grid.O)
	enc := Serialize(root)

	decoded, err := Deserialize[grid.Grid](enc)
	is.NoErr(err)
	is.Equal(decoded.Score(), root.Score())
	is.Equal(decoded.Size(), root.Size())
	is.Equal(Serialize(decoded), enc)
}

func TestDeserializeErrors(t *testing.T) {
	is := is.New(t)
	for _, bad := range []string{
		"",
		"5",
		"5 {1 } ",
		"5 {0 ",
		"x {0 } ",
		"5 [0 ] ",
		"5 {0 } } ",
		"5 {-1 } ",
	} {
		_, err := Deserialize[grid.Grid](bad)
		is.True(errors.Is(err, ErrBadTreeString))
	}
}

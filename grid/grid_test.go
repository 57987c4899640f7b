package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	g, err := Parse("x.o.x...o")
	require.NoError(t, err)
	assert.Equal(t, "[x, ,o, ,x, , , ,o]", g.String())

	_, err = Parse("short")
	assert.Error(t, err)

	_, err = Parse("x.o.q...o")
	assert.ErrorIs(t, err, ErrBadMark)
}

func TestWinning(t *testing.T) {
	cases := []struct {
		name   string
		pos    string
		player Mark
		want   bool
	}{
		{"top row", "xxx......", X, true},
		{"middle column", ".o..o..o.", O, true},
		{"main diagonal", "x...x...x", X, true},
		{"anti diagonal", "..o.o.o..", O, true},
		{"no win", "xox......", X, false},
		{"wrong player", "xxx......", O, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Parse(tc.pos)
			require.NoError(t, err)
			assert.Equal(t, tc.want, g.Winning(tc.player))
		})
	}
}

func TestEmptyIndices(t *testing.T) {
	g, err := Parse("x.o.x...o")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5, 6, 7}, g.EmptyIndices())

	full, err := Parse("xoxoxoxox")
	require.NoError(t, err)
	assert.Nil(t, full.EmptyIndices())
	assert.True(t, full.Full())
}

func TestPlaceDoesNotMutate(t *testing.T) {
	g := New()
	g2 := g.Place(4, X)

	m, err := g.At(4)
	require.NoError(t, err)
	assert.Equal(t, Empty, m)

	m, err = g2.At(4)
	require.NoError(t, err)
	assert.Equal(t, X, m)
}

func TestAtOutOfRange(t *testing.T) {
	g := New()
	_, err := g.At(9)
	assert.ErrorIs(t, err, ErrBadSquare)
	_, err = g.At(-1)
	assert.ErrorIs(t, err, ErrBadSquare)
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, O, Opponent(X))
	assert.Equal(t, X, Opponent(O))
}

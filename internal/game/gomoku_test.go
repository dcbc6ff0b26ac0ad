package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGomoku_Wins(t *testing.T) {
	t.Run("Horizontal five", func(t *testing.T) {
		// Given: four X's on row 7
		g := NewGomoku(&bytes.Buffer{})
		play(t, g, mv(7, 3, X), mv(7, 4, X), mv(7, 5, X), mv(7, 6, X))
		require.False(t, g.Wins(X, Live()))

		// When: X plays (7,7)
		require.True(t, g.SetMove(7, 7, X))

		// Then: X wins and the game is over
		last, _ := g.LastMove()
		assert.Equal(t, Coord{Row: 7, Col: 7}, last)
		assert.True(t, g.Wins(X, Live()))
		assert.False(t, g.Wins(O, Live()))
		assert.True(t, g.GameOver())
	})

	t.Run("A sixth aligned stone keeps the win", func(t *testing.T) {
		for _, sixth := range []Coord{{7, 8}, {7, 2}} {
			// Given: five X's on row 7
			g := NewGomoku(&bytes.Buffer{})
			play(t, g, mv(7, 3, X), mv(7, 4, X), mv(7, 5, X), mv(7, 6, X), mv(7, 7, X))

			// When: a sixth X extends the line
			require.True(t, g.SetMove(sixth.Row, sixth.Col, X))

			// Then: X still wins
			assert.True(t, g.Wins(X, Live()), "sixth at %v", sixth)
		}
	})

	t.Run("Win anchored in the middle of the line", func(t *testing.T) {
		// Given: two X's on each side of a gap
		g := NewGomoku(&bytes.Buffer{})
		play(t, g, mv(7, 3, X), mv(7, 4, X), mv(7, 6, X), mv(7, 7, X))

		// When: X fills the gap
		require.True(t, g.SetMove(7, 5, X))

		// Then: both directions add up to five
		assert.True(t, g.Wins(X, Live()))
	})

	t.Run("Vertical and diagonal fives", func(t *testing.T) {
		lines := map[string][]Coord{
			"vertical":  {{3, 9}, {4, 9}, {5, 9}, {6, 9}, {7, 9}},
			"diagonal":  {{10, 10}, {11, 11}, {12, 12}, {13, 13}, {14, 14}},
			"antidiago": {{4, 4}, {3, 5}, {2, 6}, {1, 7}, {0, 8}},
		}

		for name, line := range lines {
			// Given: a full line of O's, last stone placed at its end
			g := NewGomoku(&bytes.Buffer{})
			for _, c := range line {
				require.True(t, g.SetMove(c.Row, c.Col, O))
			}

			// Then: O wins along that axis
			assert.True(t, g.Wins(O, Live()), name)
			assert.False(t, g.Wins(X, Live()), name)
		}
	})

	t.Run("Four in a row is not a win", func(t *testing.T) {
		// Given: four X's and a blocking O
		g := NewGomoku(&bytes.Buffer{})
		play(t, g, mv(7, 3, X), mv(7, 4, X), mv(7, 5, X), mv(7, 7, O), mv(7, 6, X))

		// Then: nobody has five
		assert.False(t, g.Wins(X, Live()))
		assert.False(t, g.Wins(O, Live()))
		assert.False(t, g.GameOver())
	})

	t.Run("Lines running off the top left corner", func(t *testing.T) {
		// Given: four X's along the top row and down the left column from (0,0)
		g := NewGomoku(&bytes.Buffer{})
		play(t, g,
			mv(0, 1, X), mv(0, 2, X), mv(0, 3, X),
			mv(1, 0, X), mv(2, 0, X), mv(3, 0, X),
			mv(1, 1, X), mv(2, 2, X), mv(3, 3, X),
		)

		// When: the corner is filled last, anchoring every axis at the edge
		require.True(t, g.SetMove(0, 0, X))

		// Then: out-of-range cells are not counted, so no axis reaches five
		assert.False(t, g.Wins(X, Live()))
	})

	t.Run("Lines running off the bottom right corner", func(t *testing.T) {
		// Given: three O's leading into the corner
		g := NewGomoku(&bytes.Buffer{})
		play(t, g, mv(14, 11, O), mv(14, 12, O), mv(14, 13, O))

		// When: the corner is filled
		require.True(t, g.SetMove(14, 14, O))

		// Then: four is not five
		assert.False(t, g.Wins(O, Live()))
	})

	t.Run("No move yet", func(t *testing.T) {
		g := NewGomoku(&bytes.Buffer{})

		assert.False(t, g.Wins(X, Live()))
		assert.False(t, g.Wins(O, Live()))
		assert.False(t, g.GameOver())
	})

	t.Run("Only the mark at the last move can win", func(t *testing.T) {
		// Given: five X's, then an unrelated O move
		g := NewGomoku(&bytes.Buffer{})
		play(t, g, mv(7, 3, X), mv(7, 4, X), mv(7, 5, X), mv(7, 6, X), mv(7, 7, X))
		require.True(t, g.SetMove(0, 14, O))

		// Then: the check is anchored at O's stone, so X's line is not seen
		assert.False(t, g.Wins(X, Live()))
		assert.False(t, g.Wins(O, Live()))
	})

	t.Run("Snapshot is checked around the live last move", func(t *testing.T) {
		// Given: a live board whose last move is (7,7)
		g := NewGomoku(&bytes.Buffer{})
		require.True(t, g.SetMove(7, 7, X))

		// Given: a snapshot with a vertical five through (7,7)
		state := g.Snapshot()
		for row := 3; row <= 6; row++ {
			state[row][7] = X
		}

		// Then: the snapshot wins while the live board does not
		assert.True(t, g.Wins(X, On(state)))
		assert.False(t, g.Wins(X, Live()))
		assert.Equal(t, Empty, g.Snapshot()[3][7])
	})

	t.Run("Snapshot without the anchor cell", func(t *testing.T) {
		g := NewGomoku(&bytes.Buffer{})
		require.True(t, g.SetMove(7, 7, X))

		// Then: a snapshot too small to hold the last move never wins
		assert.False(t, g.Wins(X, On(NewState(3))))
		assert.False(t, g.Wins(X, On(nil)))
	})
}

func TestGomoku_GameOver(t *testing.T) {
	t.Run("Full board without five is a draw", func(t *testing.T) {
		// Given: a board filled in a pattern with no five in a row on any axis.
		// Column pairs alternate along a row and every row flips the previous
		// one, so no axis holds more than two equal marks in a row.
		g := NewGomoku(&bytes.Buffer{})
		for row := 0; row < GomokuSize; row++ {
			for col := 0; col < GomokuSize; col++ {
				mark := X
				if (col/2+row)%2 == 1 {
					mark = O
				}
				require.True(t, g.SetMove(row, col, mark))
				require.False(t, g.Wins(mark, Live()), "unexpected win at (%d,%d)", row, col)
			}
		}

		// Then: no cells remain, nobody won, the game is over
		assert.Empty(t, g.EmptyCells(Live()))
		assert.True(t, g.GameOver())
	})
}

func TestGomoku_Render(t *testing.T) {
	t.Run("InitBoard shows instructions and an empty grid", func(t *testing.T) {
		out := &bytes.Buffer{}
		g := NewGomoku(out)

		// When: drawing the initial board
		g.InitBoard()

		// Then: instructions, column indices and empty cells are printed
		text := out.String()
		assert.Contains(t, text, "Type 'row,column' to select move")
		assert.Contains(t, text, "    14")
		assert.Equal(t, GomokuSize*GomokuSize, strings.Count(text, "_"))
	})

	t.Run("PrintBoard shows the marks", func(t *testing.T) {
		out := &bytes.Buffer{}
		g := NewGomoku(out)
		play(t, g, mv(0, 0, X), mv(0, 1, O))

		// When: drawing the board
		g.PrintBoard()

		// Then: the first row carries both marks followed by empty cells
		assert.Contains(t, out.String(), "  0    X     O     _   ")
		assert.Equal(t, GomokuSize*GomokuSize-2, strings.Count(out.String(), "_"))
	})

	t.Run("Malformed cell panics", func(t *testing.T) {
		g := NewGomoku(&bytes.Buffer{})

		// Given: a board corrupted behind SetMove's back
		g.state[14][14] = Mark("#")

		// Then: rendering fails loudly with ErrMalformedCell
		defer func() {
			recovered := recover()
			err, ok := recovered.(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, ErrMalformedCell)
		}()
		g.PrintBoard()
	})
}

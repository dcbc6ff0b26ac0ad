package game

import "io"

const (
	GomokuSize = 15
	winLength  = 5
)

// axes holds the four lines through a cell, each as a pair of opposite
// directions: vertical, horizontal, ↗ and ↘.
var axes = [4][2]Coord{
	{{-1, 0}, {1, 0}},
	{{0, -1}, {0, 1}},
	{{-1, 1}, {1, -1}},
	{{-1, -1}, {1, 1}},
}

// Gomoku is the 15×15 five-in-a-row game. Emptiness is read from the grid on
// demand and win detection only looks at lines through the last move.
type Gomoku struct {
	board
}

func NewGomoku(out io.Writer) *Gomoku {
	return &Gomoku{board: newBoard(GomokuSize, out)}
}

func (that *Gomoku) Variant() Variant {
	return VariantGomoku
}

func (that *Gomoku) EmptyCells(target Target) []Coord {
	return scanEmpty(target.resolve(that.state))
}

func (that *Gomoku) ValidMove(x, y int) bool {
	return that.inBounds(x, y) && that.state[x][y] == Empty
}

func (that *Gomoku) SetMove(x, y int, mark Mark) bool {
	if !mark.IsPlayer() || !that.ValidMove(x, y) {
		return false
	}

	that.place(x, y, mark)

	return true
}

// Wins checks the four axes through the last move. A winning line must pass
// through the most recently placed stone, so the rest of the board is skipped.
func (that *Gomoku) Wins(mark Mark, target Target) bool {
	last, ok := that.LastMove()
	if !ok || !mark.IsPlayer() {
		return false
	}

	state := target.resolve(that.state)
	if anchor, inGrid := state.at(last.Row, last.Col); !inGrid || anchor != mark {
		return false
	}

	for _, axis := range axes {
		count := 1
		for _, dir := range axis {
			count += that.directionCount(state, last, dir, mark)
			if count >= winLength {
				return true
			}
		}
	}

	return false
}

// directionCount counts consecutive marks stepping away from origin, not
// counting origin itself. At most winLength-1 steps are taken.
func (that *Gomoku) directionCount(state State, origin, dir Coord, mark Mark) int {
	count := 0
	for step := 1; step < winLength; step++ {
		x, y := origin.Row+dir.Row*step, origin.Col+dir.Col*step
		if !that.inBounds(x, y) {
			break
		}

		cell, ok := state.at(x, y)
		if !ok || cell != mark {
			break
		}
		count++
	}

	return count
}

func (that *Gomoku) GameOver() bool {
	return that.Wins(X, Live()) || that.Wins(O, Live()) || len(that.EmptyCells(Live())) == 0
}

func (that *Gomoku) InitBoard() {
	renderGomokuIntro(that.out, that.size)
}

func (that *Gomoku) PrintBoard() {
	mustRender(renderIndexedGrid(that.out, that.state))
}

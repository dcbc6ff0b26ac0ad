package game

import (
	"io"
	"sort"
)

const ticTacToeSize = 3

// WinCombos are the eight lines of the 3×3 board: rows, columns, diagonals.
var WinCombos = [8][3]Coord{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// TicTacToe is the 3×3 three-in-a-row game. It tracks available moves
// incrementally: every successful SetMove removes one coordinate.
type TicTacToe struct {
	board
	availMoves map[Coord]struct{}
}

func NewTicTacToe(out io.Writer) *TicTacToe {
	availMoves := make(map[Coord]struct{}, ticTacToeSize*ticTacToeSize)
	for i := 0; i < ticTacToeSize; i++ {
		for j := 0; j < ticTacToeSize; j++ {
			availMoves[Coord{Row: i, Col: j}] = struct{}{}
		}
	}

	return &TicTacToe{
		board:      newBoard(ticTacToeSize, out),
		availMoves: availMoves,
	}
}

func (that *TicTacToe) Variant() Variant {
	return VariantTicTacToe
}

func (that *TicTacToe) EmptyCells(target Target) []Coord {
	if !target.IsLive() {
		return scanEmpty(target.resolve(nil))
	}

	cells := make([]Coord, 0, len(that.availMoves))
	for cell := range that.availMoves {
		cells = append(cells, cell)
	}

	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})

	return cells
}

func (that *TicTacToe) ValidMove(x, y int) bool {
	_, ok := that.availMoves[Coord{Row: x, Col: y}]
	return ok
}

func (that *TicTacToe) SetMove(x, y int, mark Mark) bool {
	if !mark.IsPlayer() || !that.ValidMove(x, y) {
		return false
	}

	that.place(x, y, mark)
	delete(that.availMoves, Coord{Row: x, Col: y})

	return true
}

func (that *TicTacToe) Wins(mark Mark, target Target) bool {
	if !mark.IsPlayer() {
		return false
	}

	state := target.resolve(that.state)
	for _, combo := range WinCombos {
		if lineOf(state, combo, mark) {
			return true
		}
	}

	return false
}

func (that *TicTacToe) GameOver() bool {
	return that.Wins(X, Live()) || that.Wins(O, Live()) || len(that.availMoves) == 0
}

func (that *TicTacToe) InitBoard() {
	renderNumberedBoard(that.out, that.size)
}

func (that *TicTacToe) PrintBoard() {
	mustRender(renderGrid(that.out, that.state))
}

// lineOf reports whether every cell of the line holds mark.
func lineOf(state State, combo [3]Coord, mark Mark) bool {
	for _, c := range combo {
		cell, ok := state.at(c.Row, c.Col)
		if !ok || cell != mark {
			return false
		}
	}

	return true
}

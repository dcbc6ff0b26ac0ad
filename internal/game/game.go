package game

import (
	"errors"
	"fmt"
	"io"
	"os"
)

type Variant string

const (
	VariantTicTacToe Variant = "tictactoe"
	VariantGomoku    Variant = "gomoku"
)

var (
	ErrUnknownVariant = errors.New("unknown game variant")
	ErrMalformedCell  = errors.New("invalid value in the board")
)

// Game is the contract shared by every grid-based alignment game.
//
// SetMove is the only operation that changes board state. A Game has a single
// owner; callers serialize SetMove themselves.
type Game interface {
	// EmptyCells returns the empty coordinates of the target board in row-major order.
	EmptyCells(target Target) []Coord
	// InitBoard draws the starting board and the game instructions.
	InitBoard()
	// PrintBoard draws the current board.
	PrintBoard()
	// ValidMove reports whether (x, y) is on the board and empty.
	ValidMove(x, y int) bool
	// SetMove places mark at (x, y) if the move is valid and mark is X or O.
	SetMove(x, y int, mark Mark) bool
	// Wins reports whether mark holds a winning line on the target board.
	Wins(mark Mark, target Target) bool
	// GameOver reports whether either mark has won or no empty cells remain.
	GameOver() bool

	Size() int
	LastMove() (Coord, bool)
	Snapshot() State
	Variant() Variant
}

// New builds the game for the given variant, rendering to out (stdout when nil).
func New(variant Variant, out io.Writer) (Game, error) {
	switch variant {
	case VariantTicTacToe:
		return NewTicTacToe(out), nil
	case VariantGomoku:
		return NewGomoku(out), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
}

// board is the grid bookkeeping both variants share.
type board struct {
	size     int
	state    State
	lastMove Coord
	out      io.Writer
}

func newBoard(size int, out io.Writer) board {
	if out == nil {
		out = os.Stdout
	}

	return board{
		size:     size,
		state:    NewState(size),
		lastMove: NoMove,
		out:      out,
	}
}

func (that *board) Size() int {
	return that.size
}

func (that *board) LastMove() (Coord, bool) {
	return that.lastMove, that.lastMove != NoMove
}

func (that *board) Snapshot() State {
	return that.state.Clone()
}

func (that *board) inBounds(x, y int) bool {
	return x >= 0 && x < that.size && y >= 0 && y < that.size
}

// place writes the mark and records it as the last move. Callers validate first.
func (that *board) place(x, y int, mark Mark) {
	that.state[x][y] = mark
	that.lastMove = Coord{Row: x, Col: y}
}

// scanEmpty collects the empty cells of a grid without touching it.
func scanEmpty(state State) []Coord {
	cells := make([]Coord, 0)
	for x, row := range state {
		for y, cell := range row {
			if cell == Empty {
				cells = append(cells, Coord{Row: x, Col: y})
			}
		}
	}

	return cells
}

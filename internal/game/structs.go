package game

// Mark identifies what occupies a cell.
type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// Marks lists the two player marks in play order.
var Marks = [2]Mark{X, O}

// IsPlayer reports whether m is one of the two player marks.
func (m Mark) IsPlayer() bool {
	return m == X || m == O
}

// Opponent returns the other player mark. Empty maps to Empty.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Coord is a 0-indexed (row, column) position on the board.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove is the last move of a board nobody has played on yet.
var NoMove = Coord{Row: -1, Col: -1}

// State is a square grid of cells, indexed [row][col].
type State [][]Mark

// NewState returns a size×size grid with every cell Empty.
func NewState(size int) State {
	state := make(State, size)
	for i := range state {
		state[i] = make([]Mark, size)
	}

	return state
}

// Clone returns a deep copy of the grid.
func (that State) Clone() State {
	if that == nil {
		return nil
	}

	clone := make(State, len(that))
	for i, row := range that {
		clone[i] = append([]Mark(nil), row...)
	}

	return clone
}

// at returns the cell at (row, col), or Empty with ok=false when the grid does not
// contain that position.
func (that State) at(row, col int) (Mark, bool) {
	if row < 0 || row >= len(that) || col < 0 || col >= len(that[row]) {
		return Empty, false
	}

	return that[row][col], true
}

// Target selects the board a query runs against: the live board or an explicit
// snapshot.
type Target struct {
	state    State
	snapshot bool
}

// Live targets the game's own board.
func Live() Target {
	return Target{}
}

// On targets an explicit snapshot. A nil snapshot is still a snapshot.
func On(state State) Target {
	return Target{state: state, snapshot: true}
}

// IsLive reports whether the target is the live board.
func (that Target) IsLive() bool {
	return !that.snapshot
}

// resolve picks the grid to read from.
func (that Target) resolve(live State) State {
	if that.snapshot {
		return that.state
	}

	return live
}

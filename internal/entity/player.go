package entity

// Player - whose turn it is, or who won.
type Player int

const (
	PlayerNone Player = iota
	PlayerX
	PlayerO
)

// Cell - the content of one board position.
type Cell int

const (
	Empty Cell = iota
	MarkX
	MarkO
)

var (
	playerCells = map[Player]Cell{
		PlayerNone: Empty,
		PlayerX:    MarkX,
		PlayerO:    MarkO,
	}

	cellSymbols = map[Cell]rune{
		Empty: '-',
		MarkX: 'X',
		MarkO: 'O',
	}
)

// Cell - the mark the player leaves on the board.
func (that Player) Cell() Cell {
	return playerCells[that]
}

// Opponent - X for O and O for X. PlayerNone has no opponent.
func (that Player) Opponent() Player {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return PlayerNone
	}
}

func (that Player) String() string {
	return string(that.Cell().Symbol())
}

// Owner - the player whose mark is in the cell.
func (that Cell) Owner() Player {
	switch that {
	case MarkX:
		return PlayerX
	case MarkO:
		return PlayerO
	default:
		return PlayerNone
	}
}

func (that Cell) Symbol() rune {
	if symbol, ok := cellSymbols[that]; ok {
		return symbol
	}

	return '?'
}

func (that Cell) String() string {
	return string(that.Symbol())
}

package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const BoardSize = 9

// WinLines - the 3 rows, 3 columns and 2 diagonals of the grid.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board - the 3x3 grid, index = row*3 + col.
type Board struct {
	cells [BoardSize]Cell
}

func NewBoard() *Board {
	return &Board{}
}

// Get - returns the cell at idx. An index outside the grid is a caller bug and panics.
func (that *Board) Get(idx int) Cell {
	mustBeOnBoard(idx)

	return that.cells[idx]
}

// ApplyMove - places the player's mark on an empty cell. It reports false and leaves the board
// untouched when the cell is already taken.
func (that *Board) ApplyMove(player Player, idx int) bool {
	mustBeOnBoard(idx)

	mark := player.Cell()
	if mark == Empty {
		panic(fmt.Sprintf("apply move: %q has no mark", player))
	}

	if that.cells[idx] != Empty {
		return false
	}

	that.cells[idx] = mark

	return true
}

func (that *Board) HasEmptyCell() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return true
		}
	}

	return false
}

// HasWon - reports whether the player owns all three cells of any win line.
func (that *Board) HasWon(player Player) bool {
	mark := player.Cell()
	if mark == Empty {
		return false
	}

	for _, line := range WinLines {
		if that.cells[line[0]] == mark && that.cells[line[1]] == mark && that.cells[line[2]] == mark {
			return true
		}
	}

	return false
}

// Winner - X is checked before O so the result is deterministic.
func (that *Board) Winner() Player {
	for _, player := range [...]Player{PlayerX, PlayerO} {
		if that.HasWon(player) {
			return player
		}
	}

	return PlayerNone
}

func (that *Board) Rows() [3][3]Cell {
	var rows [3][3]Cell
	for idx, cell := range that.cells {
		rows[idx/3][idx%3] = cell
	}

	return rows
}

func (that *Board) String() string {
	var sb strings.Builder
	for i, row := range that.Rows() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteRune(cell.Symbol())
		}
	}

	return sb.String()
}

func mustBeOnBoard(idx int) {
	if idx < 0 || idx >= BoardSize {
		panic(fmt.Errorf("%w: %d", apperror.ErrInvalidCell, idx))
	}
}

package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type State int

const (
	StateInProgress State = iota
	StateWon
	StateDraw
)

func (that State) String() string {
	switch that {
	case StateInProgress:
		return "in-progress"
	case StateWon:
		return "won"
	case StateDraw:
		return "draw"
	default:
		return fmt.Sprintf("state(%d)", int(that))
	}
}

// Game - the turn state machine over a single board. X always moves first.
type Game struct {
	board  *entity.Board
	turn   entity.Player
	winner entity.Player
	state  State
}

func NewGame() *Game {
	return &Game{
		board:  entity.NewBoard(),
		turn:   entity.PlayerX,
		winner: entity.PlayerNone,
		state:  StateInProgress,
	}
}

func (that *Game) Board() *entity.Board {
	return that.board
}

// Turn - the player to move, or PlayerNone once the game is over.
func (that *Game) Turn() entity.Player {
	return that.turn
}

func (that *Game) Winner() entity.Player {
	return that.winner
}

func (that *Game) State() State {
	return that.state
}

func (that *Game) IsFinished() bool {
	return that.state != StateInProgress
}

// MakeTurn - places the current player's mark on cell and advances the game.
func (that *Game) MakeTurn(cell int) error {
	if err := that.validateMove(cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if !that.board.ApplyMove(that.turn, cell) {
		return fmt.Errorf("invalid turn: %w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.updateGameStatus()

	return nil
}

// validateMove - checks if the move is valid.
func (that *Game) validateMove(cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func (that *Game) updateGameStatus() {
	if winner := that.board.Winner(); winner != entity.PlayerNone {
		that.winner = winner
		that.state = StateWon
		that.turn = entity.PlayerNone

		return
	}

	if !that.board.HasEmptyCell() {
		that.state = StateDraw
		that.turn = entity.PlayerNone

		return
	}

	that.turn = that.turn.Opponent()
}

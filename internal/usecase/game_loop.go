package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/coder/quartz"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type moveReader interface {
	ReadMove(ctx context.Context) (int, error)
}

type presenter interface {
	ShowBoard(board *entity.Board)
	ShowTurn(player entity.Player)
	ShowInvalidMove()
	ShowWinner(player entity.Player)
	ShowDraw()
}

// Move - an accepted turn.
type Move struct {
	Player entity.Player
	Cell   int
}

// Result - how a finished game ended.
type Result struct {
	State    tictactoe.State
	Winner   entity.Player
	Moves    []Move
	Rejected int
	Duration time.Duration
}

type GameLoop struct {
	logger *slog.Logger
	clock  quartz.Clock

	reader    moveReader
	presenter presenter
}

func NewGameLoop(logger *slog.Logger, clock quartz.Clock, reader moveReader, presenter presenter) *GameLoop {
	return &GameLoop{
		logger:    logger.With("component", "game-loop"),
		clock:     clock,
		reader:    reader,
		presenter: presenter,
	}
}

// Run - plays one game to the end. It only fails when no further move can be read.
func (that *GameLoop) Run(ctx context.Context) (*Result, error) {
	game := tictactoe.NewGame()
	result := &Result{}

	startedAt := that.clock.Now()
	that.logger.Info("game started", "first", game.Turn())

	for !game.IsFinished() {
		player := game.Turn()

		that.presenter.ShowBoard(game.Board())
		that.presenter.ShowTurn(player)

		cell, err := that.reader.ReadMove(ctx)
		if err != nil {
			that.logger.Warn("game aborted", "player", player, "moves", len(result.Moves), "error", err)

			return nil, fmt.Errorf("failed to read move: %w", err)
		}

		if err = game.MakeTurn(cell); err != nil {
			if errors.Is(err, apperror.ErrCellOccupied) {
				that.logger.Debug("move rejected", "player", player, "cell", cell)
				result.Rejected++
				that.presenter.ShowInvalidMove()

				continue
			}

			return nil, fmt.Errorf("failed to make turn: %w", err)
		}

		that.logger.Debug("move accepted", "player", player, "cell", cell)
		result.Moves = append(result.Moves, Move{Player: player, Cell: cell})
	}

	result.State = game.State()
	result.Winner = game.Winner()
	result.Duration = that.clock.Since(startedAt)

	that.presenter.ShowBoard(game.Board())
	if result.State == tictactoe.StateWon {
		that.presenter.ShowWinner(result.Winner)
	} else {
		that.presenter.ShowDraw()
	}

	that.logger.Info("game finished",
		"state", result.State,
		"winner", result.Winner,
		"moves", len(result.Moves),
		"rejected", result.Rejected,
		"duration", result.Duration,
	)

	return result, nil
}

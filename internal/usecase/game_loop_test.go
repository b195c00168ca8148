package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedReader replays a fixed list of moves, spending one second of mock time on each.
type scriptedReader struct {
	st    *suite.Suite
	moves []int
	reads int
}

func (that *scriptedReader) ReadMove(_ context.Context) (int, error) {
	if that.reads >= len(that.moves) {
		return 0, apperror.ErrInputClosed
	}

	that.st.Clock.Advance(time.Second)
	move := that.moves[that.reads]
	that.reads++

	return move, nil
}

type recordingPresenter struct {
	events []string
}

func (that *recordingPresenter) ShowBoard(board *entity.Board) {
	that.events = append(that.events, "board "+board.String())
}

func (that *recordingPresenter) ShowTurn(player entity.Player) {
	that.events = append(that.events, "turn "+player.String())
}

func (that *recordingPresenter) ShowInvalidMove() {
	that.events = append(that.events, "invalid")
}

func (that *recordingPresenter) ShowWinner(player entity.Player) {
	that.events = append(that.events, "winner "+player.String())
}

func (that *recordingPresenter) ShowDraw() {
	that.events = append(that.events, "draw")
}

func (that *recordingPresenter) last(n int) []string {
	return that.events[len(that.events)-n:]
}

func newLoop(st *suite.Suite, moves ...int) (*GameLoop, *scriptedReader, *recordingPresenter) {
	reader := &scriptedReader{st: st, moves: moves}
	view := &recordingPresenter{}

	return NewGameLoop(st.Logger, st.Clock, reader, view), reader, view
}

func TestGameLoop_Run(t *testing.T) {
	t.Run("X wins on column 0", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: moves X=0, O=1, X=3, O=2, X=6
		loop, reader, view := newLoop(st, 0, 1, 3, 2, 6)

		// When: the game is played
		result, err := loop.Run(ctx)

		// Then: X wins after five moves
		require.NoError(t, err)
		assert.Equal(t, tictactoe.StateWon, result.State)
		assert.Equal(t, entity.PlayerX, result.Winner)
		assert.Len(t, result.Moves, 5)
		assert.Equal(t, 5, reader.reads)
		assert.Equal(t, 5*time.Second, result.Duration)

		// Then: the final board and the announcement are shown last
		assert.Equal(t, []string{"board XOO\nX--\nX--", "winner X"}, view.last(2))
	})

	t.Run("Draw on a full board", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: all nine cells filled without a line
		loop, _, view := newLoop(st, 0, 1, 2, 3, 5, 4, 6, 8, 7)

		// When: the game is played
		result, err := loop.Run(ctx)

		// Then: the game is a draw
		require.NoError(t, err)
		assert.Equal(t, tictactoe.StateDraw, result.State)
		assert.Equal(t, entity.PlayerNone, result.Winner)
		assert.Len(t, result.Moves, 9)
		assert.Equal(t, "draw", view.events[len(view.events)-1])
		assert.NotContains(t, view.events, "winner X")
		assert.NotContains(t, view.events, "winner O")
	})

	t.Run("Occupied cell keeps the same player", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: O tries the center X already holds, then plays elsewhere
		loop, _, view := newLoop(st, 4, 4, 0, 1, 8, 7)

		// When: the game is played
		result, err := loop.Run(ctx)
		require.NoError(t, err)

		// Then: the rejected move is reported and O is prompted again
		assert.Equal(t, 1, result.Rejected)
		assert.Equal(t, []string{
			"board ---\n---\n---",
			"turn X",
			"board ---\n-X-\n---",
			"turn O",
			"invalid",
			"board ---\n-X-\n---",
			"turn O",
		}, view.events[:7])

		// Then: the first accepted O move is cell 0 and X wins on column 1
		require.Len(t, result.Moves, 5)
		assert.Equal(t, Move{Player: entity.PlayerO, Cell: 0}, result.Moves[1])
		assert.Equal(t, entity.PlayerX, result.Winner)
	})

	t.Run("Turns alternate starting with X", func(t *testing.T) {
		ctx, st := suite.New(t)

		loop, _, view := newLoop(st, 0, 1, 3, 2, 6)

		_, err := loop.Run(ctx)
		require.NoError(t, err)

		var turns []string
		for _, event := range view.events {
			if player, ok := strings.CutPrefix(event, "turn "); ok {
				turns = append(turns, player)
			}
		}
		assert.Equal(t, []string{"X", "O", "X", "O", "X"}, turns)
	})

	t.Run("Closed input aborts the game", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: the input ends after two moves
		loop, _, view := newLoop(st, 0, 4)

		// When: the game is played
		result, err := loop.Run(ctx)

		// Then: the error is returned and no outcome is announced
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Nil(t, result)
		assert.NotContains(t, view.events, "draw")
	})
}

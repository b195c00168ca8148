package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	greeting         = "Hello, tic-tac-toe!"
	outOfRangeNotice = "Input a value between 0 and 8!"
	invalidMove      = "invalid move; try again!"
	drawNotice       = "No player wins!"
)

// keyRows - the cell indexes printed next to each board row.
var keyRows = [3]string{"012", "345", "678"}

// Console - reads moves from a line-oriented input and renders the game to an output.
type Console struct {
	logger *slog.Logger

	scanner *bufio.Scanner
	out     io.Writer
	styles  styles
}

func NewConsole(logger *slog.Logger, in io.Reader, out io.Writer, color bool) *Console {
	return &Console{
		logger:  logger.With("component", "console"),
		scanner: bufio.NewScanner(in),
		out:     out,
		styles:  newStyles(out, color),
	}
}

// ReadMove - blocks until a line holding a cell index in [0,8] is read. Anything else is
// reported and read again.
func (that *Console) ReadMove(ctx context.Context) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if !that.scanner.Scan() {
			if err := that.scanner.Err(); err != nil {
				return 0, fmt.Errorf("failed to read input: %w", err)
			}

			return 0, apperror.ErrInputClosed
		}

		line := that.scanner.Text()

		cell, err := ParseMove(line)
		if err != nil {
			that.logger.Debug("input rejected", "input", line, "error", err)
			that.println(that.styles.Warning.Render(outOfRangeNotice))

			continue
		}

		return cell, nil
	}
}

// ParseMove - parses a trimmed line as a cell index.
func ParseMove(line string) (int, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, line)
	}

	if value >= entity.BoardSize {
		return 0, fmt.Errorf("%w: %d is out of range", apperror.ErrInvalidInput, value)
	}

	return int(value), nil
}

func (that *Console) ShowGreeting() {
	that.println(that.styles.Title.Render(greeting))
}

// ShowBoard - prints the grid next to the index key, one row per line.
func (that *Console) ShowBoard(board *entity.Board) {
	for i, row := range board.Rows() {
		var sb strings.Builder
		for _, cell := range row {
			sb.WriteString(that.renderCell(cell))
		}

		that.println(fmt.Sprintf("|%s|\t|%s|", sb.String(), that.styles.Key.Render(keyRows[i])))
	}
}

func (that *Console) ShowTurn(player entity.Player) {
	that.println(that.styles.Prompt.Render(fmt.Sprintf("Player's %s turn:", player)))
}

func (that *Console) ShowInvalidMove() {
	that.println(that.styles.Warning.Render(invalidMove))
}

func (that *Console) ShowWinner(player entity.Player) {
	that.println(that.styles.Success.Render(fmt.Sprintf("Player %s wins!", player)))
}

func (that *Console) ShowDraw() {
	that.println(that.styles.Info.Render(drawNotice))
}

func (that *Console) renderCell(cell entity.Cell) string {
	switch cell {
	case entity.MarkX:
		return that.styles.MarkX.Render(cell.String())
	case entity.MarkO:
		return that.styles.MarkO.Render(cell.String())
	default:
		return that.styles.Empty.Render(cell.String())
	}
}

func (that *Console) println(line string) {
	if _, err := fmt.Fprintln(that.out, line); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInvalidInput = errors.New("input is not a cell index")
	ErrInputClosed  = errors.New("input is closed")
)

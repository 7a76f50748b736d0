package apperror

import "errors"

var (
	ErrInvalidIndex         = errors.New("cell index is out of range")
	ErrIllegalMove          = errors.New("illegal move")
	ErrNoFreeCellsAvailable = errors.New("no free cells available")
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrGameFinished         = errors.New("game is already finished")
	ErrGameIsNotStarted     = errors.New("game is not started")
	ErrNotYourTurn          = errors.New("it's not your turn")
	ErrInvalidDelay         = errors.New("delay must not be negative")
	ErrAITurnFailed         = errors.New("ai turn failed")
)

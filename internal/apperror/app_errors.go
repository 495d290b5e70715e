package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrRoomFull       = errors.New("room is full")
	ErrRoomNotFound   = errors.New("room not found")
	ErrUserNotInRoom  = errors.New("user is not in the room")
	ErrGameNotStarted = errors.New("game is not started")
	ErrGameOver       = errors.New("game is already finished")
	ErrConflict       = errors.New("room was modified concurrently")

	ErrInvalidMove  = errors.New("invalid move")
	ErrNotYourTurn  = fmt.Errorf("%w: it's not your turn", ErrInvalidMove)
	ErrOutOfBounds  = fmt.Errorf("%w: cell is out of the board", ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
)

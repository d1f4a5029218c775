package apperror

import "errors"

var (
	ErrMoveOutOfRange  = errors.New("move is out of history range")
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrInvalidMove     = errors.New("invalid move index")
	ErrCorruptedGame   = errors.New("game state is corrupted")
	ErrSessionRequired = errors.New("session id is required")
	ErrUnknownAction   = errors.New("unknown action")
)

package apperror

import "errors"

var (
	ErrInvalidMove     = errors.New("cell is already occupied")
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrInvalidNotation = errors.New("invalid board notation")
	ErrGameFinished    = errors.New("game is already finished")
)

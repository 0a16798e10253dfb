package liability

import "errors"

var (
	ErrNotFound    = errors.New("liability not found")
	ErrInvalidData = errors.New("invalid liability data")
)

package asset

import "errors"

var (
	ErrNotFound    = errors.New("asset not found")
	ErrInvalidData = errors.New("invalid asset data")
)

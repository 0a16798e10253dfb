package transaction

import "errors"

var (
	ErrNotFound    = errors.New("transaction not found")
	ErrInvalidData = errors.New("invalid transaction data")
)

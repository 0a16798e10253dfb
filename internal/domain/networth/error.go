package networth

import "errors"

var ErrInvalidProjection = errors.New("invalid projection input")

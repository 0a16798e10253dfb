package session

import "errors"

// ErrInvalidSession covers unknown and expired tokens alike so a caller
// cannot distinguish the two.
var ErrInvalidSession = errors.New("invalid session")

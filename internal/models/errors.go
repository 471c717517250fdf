package models

import "errors"

// ErrInvalidStatus indicates a status outside Planned, InProgress and Done
var ErrInvalidStatus = errors.New("invalid activity status")

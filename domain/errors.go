package domain

import "errors"

// ErrInvalidArgument reports an input outside the numeric domain of a
// calculation. Match with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

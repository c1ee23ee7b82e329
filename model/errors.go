package model

import "errors"

// Error kinds. Every failure returned by the rule engine wraps one of them.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIllegalState    = errors.New("illegal state")
)

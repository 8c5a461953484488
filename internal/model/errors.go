package model

import "errors"

var (
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidAction     = errors.New("invalid action")
	ErrPushHasFromBranch = errors.New("push event must not carry from_branch")
)

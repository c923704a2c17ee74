package errors

import "errors"

var (
	ErrMissionNotFound = errors.New("mission not found")
	ErrInvalidInput    = errors.New("invalid input")
)

package model

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrMalformedRecord = errors.New("malformed record")
)

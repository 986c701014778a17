package mxe

import "errors"

var (
	ErrNotFound           = errors.New("mxe: file not found")
	ErrUnrecognizedFormat = errors.New("mxe: unrecognized format")
	ErrTruncatedStream    = errors.New("mxe: truncated stream")
	ErrInvalidHeader      = errors.New("mxe: invalid header")
	ErrLimitExceeded      = errors.New("mxe: limit exceeded")
)

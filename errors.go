package fuzzgo

import "errors"

var (
	// ErrClosed is returned when a CachedRatio is scored against after Close.
	ErrClosed = errors.New("cached ratio is closed")
)

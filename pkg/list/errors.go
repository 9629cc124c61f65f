package list

import (
	"errors"
)

var (
	ErrNullArgument    = errors.New("list: null argument")
	ErrAlreadyAttached = errors.New("list: node already attached")
	ErrAnchorNotFound  = errors.New("list: anchor not found")
	ErrIndexRange      = errors.New("list: index out of range")
	ErrEmptyCollection = errors.New("list: empty collection")
	ErrRangeError      = errors.New("list: destination too small")
)

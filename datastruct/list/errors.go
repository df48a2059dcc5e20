package list

import "errors"

var (
	ErrNilPointer        = errors.New("nil pointer provided")
	ErrMemoryAlloc       = errors.New("memory allocation failed")
	ErrIndexOutOfBounds  = errors.New("index out of bounds")
	ErrElementNotFound   = errors.New("element not found")
	ErrListFull          = errors.New("list has reached maximum capacity")
	ErrOverwriteDisabled = errors.New("overwrite is disabled and list is full")
	ErrInvalidOperation  = errors.New("invalid operation for current state")
	ErrNoCompareFunc     = errors.New("compare function required but not provided")
	ErrNoPrintFunc       = errors.New("print function required but not provided")
	ErrNoFreeFunc        = errors.New("free function required but not provided")
)

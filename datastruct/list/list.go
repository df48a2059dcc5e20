package list

import "io"

// Element handles are raw byte blocks of the list's element size. All
// type-specific behavior is supplied through these callbacks.

// PrintFunc renders one element to w.
type PrintFunc func(w io.Writer, data []byte)

// CompareFunc returns <0, 0 or >0 when a sorts before, equal to or after b.
type CompareFunc func(a, b []byte) int

// FreeFunc releases resources referenced by an element before the list
// drops the block.
type FreeFunc func(data []byte)

// CopyFunc deep-copies src into dst. dst is already element-size bytes long.
type CopyFunc func(dst, src []byte)

type FilterFunc func(data []byte) bool

// MapFunc transforms src into dst, which has the target element size.
type MapFunc func(dst, src []byte)

type PredicateFunc func(data []byte) bool

// KeyFunc extracts the comparison key of an element as bytes. Installing one
// lets the set algebra use a hashed membership index; the key must agree with
// the compare function the caller passes to those operations.
type KeyFunc func(data []byte) []byte

// Consumer visits element i; returning false stops the walk.
type Consumer func(i int, data []byte) bool

type Direction int

const (
	StartFromHead Direction = iota
	StartFromTail
)

type OverflowPolicy int

const (
	RejectNewWhenFull OverflowPolicy = iota
	EvictOldestWhenFull
)

const (
	// Unlimited disables the capacity bound.
	Unlimited = 0
	// DeleteAllOccurrences removes every match in RemoveMatching.
	DeleteAllOccurrences = -1
)

// List is the read/append surface consumed by collaborators such as the
// persistence layer.
type List interface {
	Len() int
	IsEmpty() bool
	ElementSize() int
	ForEach(c Consumer)
	InsertTailValue(data []byte) error
	Clear() error
}

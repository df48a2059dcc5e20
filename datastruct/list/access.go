package list

import (
	"fmt"
	"io"
	"strings"
)

// Get returns the data handle at index. The handle stays valid only while
// the list structure is unchanged.
func (l *LinkedList) Get(index int) ([]byte, error) {
	if !l.ok() {
		return nil, ErrNilPointer
	}
	if index < 0 || index >= l.length {
		return nil, ErrIndexOutOfBounds
	}
	return l.nodeAt(index).data, nil
}

// Set overwrites the element at index in place with value semantics: the
// free callback releases the old content first, then data is copied into
// the existing block. The node's ownership mode is unchanged.
func (l *LinkedList) Set(index int, data []byte) error {
	if !l.ok() || data == nil {
		return ErrNilPointer
	}
	if index < 0 || index >= l.length {
		return ErrIndexOutOfBounds
	}
	if len(data) < l.elementSize {
		return ErrInvalidOperation
	}
	n := l.nodeAt(index)
	if l.freeFn != nil {
		l.freeFn(n.data)
	}
	if l.copyFn != nil {
		l.copyFn(n.data[:l.elementSize], data)
	} else {
		copy(n.data[:l.elementSize], data)
	}
	return nil
}

func (l *LinkedList) IndexOf(pred PredicateFunc) (int, error) {
	return l.IndexOfAdvanced(StartFromHead, pred)
}

// IndexOfAdvanced returns the index of the first element satisfying pred
// when scanning in the given direction.
func (l *LinkedList) IndexOfAdvanced(direction Direction, pred PredicateFunc) (int, error) {
	if !l.ok() {
		return -1, ErrNilPointer
	}
	if pred == nil {
		return -1, ErrInvalidOperation
	}
	index := 0
	if direction == StartFromTail {
		index = l.length - 1
	}
	it := l.iterate(direction)
	for cur := it.Next(); cur != nil; cur = it.Next() {
		if pred(cur.data) {
			return index, nil
		}
		if direction == StartFromTail {
			index--
		} else {
			index++
		}
	}
	return -1, ErrElementNotFound
}

func (l *LinkedList) CountMatching(pred PredicateFunc) int {
	if !l.ok() || pred == nil {
		return 0
	}
	count := 0
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		if pred(cur.data) {
			count++
		}
	}
	return count
}

func (l *LinkedList) ForEach(c Consumer) {
	if !l.ok() || c == nil {
		return
	}
	i := 0
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		if !c(i, cur.data) {
			break
		}
		i++
	}
}

func (l *LinkedList) PrintList(w io.Writer) error {
	return l.PrintListAdvanced(w, false, true, "\n")
}

func (l *LinkedList) PrintListAdvanced(w io.Writer, showSize, showIndex bool, separator string) error {
	if !l.ok() {
		return ErrNilPointer
	}
	if l.length == 0 {
		return ErrElementNotFound
	}
	if l.printFn == nil {
		return ErrNoPrintFunc
	}
	if showSize {
		fmt.Fprintf(w, "List len: %d\n", l.length)
	}
	index := 0
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		if showIndex {
			fmt.Fprintf(w, "  [%d]: ", index)
			index++
		}
		l.printFn(w, cur.data)
		if cur.next != l.tail {
			_, _ = io.WriteString(w, separator)
		}
	}
	_, _ = io.WriteString(w, "\n")
	return nil
}

// ToString joins the rendered elements with separator. Lossy convenience,
// not a serialization format.
func (l *LinkedList) ToString(separator string) (string, error) {
	if !l.ok() {
		return "", ErrNilPointer
	}
	if l.printFn == nil {
		return "", ErrNoPrintFunc
	}
	var b strings.Builder
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		if cur != l.head.next {
			b.WriteString(separator)
		}
		l.printFn(&b, cur.data)
	}
	return b.String(), nil
}

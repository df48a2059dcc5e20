package list

// copyConfiguration inherits the source's callbacks. Only valid between
// lists of the same element type.
func (l *LinkedList) copyConfiguration(src *LinkedList) {
	l.printFn = src.printFn
	l.freeFn = src.freeFn
	l.copyFn = src.copyFn
	l.keyFn = src.keyFn
}

// Copy builds a fresh list of value-mode copies with the same configuration.
func (l *LinkedList) Copy() (*LinkedList, error) {
	if !l.ok() {
		return nil, ErrNilPointer
	}
	res, err := NewLinkedList(l.elementSize)
	if err != nil {
		return nil, err
	}
	res.copyConfiguration(l)
	if err := res.Extend(l); err != nil {
		res.Destroy()
		return nil, err
	}
	return res, nil
}

// Extend appends value-mode copies of every element of other. The element
// count is snapshotted first, so extending a list with itself terminates.
func (l *LinkedList) Extend(other *LinkedList) error {
	if !l.ok() || !other.ok() {
		return ErrNilPointer
	}
	if l.elementSize != other.elementSize {
		return ErrInvalidOperation
	}
	n := other.length
	cur := other.head.next
	for i := 0; i < n; i++ {
		if err := l.InsertTailValue(cur.data); err != nil {
			return err
		}
		cur = cur.next
	}
	return nil
}

// Concat builds a new list holding copies of list1's elements followed by
// list2's, configured like list1.
func Concat(list1, list2 *LinkedList) (*LinkedList, error) {
	if !list1.ok() || !list2.ok() {
		return nil, ErrNilPointer
	}
	if list1.elementSize != list2.elementSize {
		return nil, ErrInvalidOperation
	}
	res, err := NewLinkedList(list1.elementSize)
	if err != nil {
		return nil, err
	}
	res.copyConfiguration(list1)
	if err := res.Extend(list1); err != nil {
		res.Destroy()
		return nil, err
	}
	if err := res.Extend(list2); err != nil {
		res.Destroy()
		return nil, err
	}
	return res, nil
}

// Slice copies the half-open range [start, end) into a new list. end is
// clamped to the length; start at or past the end of the list fails.
func (l *LinkedList) Slice(start, end int) (*LinkedList, error) {
	if !l.ok() {
		return nil, ErrNilPointer
	}
	if start < 0 || start >= end || start >= l.length {
		return nil, ErrIndexOutOfBounds
	}
	if end > l.length {
		end = l.length
	}
	res, err := NewLinkedList(l.elementSize)
	if err != nil {
		return nil, err
	}
	res.copyConfiguration(l)
	cur := l.head.next
	for i := 0; i < start; i++ {
		cur = cur.next
	}
	for i := start; i < end; i++ {
		if err := res.InsertTailValue(cur.data); err != nil {
			res.Destroy()
			return nil, err
		}
		cur = cur.next
	}
	return res, nil
}

// Rotate moves the last positions elements to the front (negative values
// rotate the other way). Four pointer reassignments relink the ring; no
// element is copied or freed.
func (l *LinkedList) Rotate(positions int) error {
	if !l.ok() {
		return ErrNilPointer
	}
	if l.length <= 1 {
		return nil
	}
	actual := positions % l.length
	if actual < 0 {
		actual += l.length
	}
	if actual == 0 {
		return nil
	}
	// actual is in [1, length-1], so split lands on a real node.
	split := l.head.next
	for i := 0; i < l.length-actual; i++ {
		split = split.next
	}
	firstStart := l.head.next
	firstEnd := split.prev
	secondStart := split
	secondEnd := l.tail.prev

	l.head.next = secondStart
	secondStart.prev = l.head
	secondEnd.next = firstStart
	firstStart.prev = secondEnd
	firstEnd.next = l.tail
	l.tail.prev = firstEnd
	return nil
}

// Reverse flips every node's links in one pass, then repairs the sentinel
// boundary. The list stays walkable in both directions afterwards.
func (l *LinkedList) Reverse() error {
	if !l.ok() {
		return ErrNilPointer
	}
	if l.length <= 1 {
		return nil
	}
	first := l.head.next
	last := l.tail.prev
	for cur := first; cur != l.tail; {
		next := cur.next
		cur.next = cur.prev
		cur.prev = next
		cur = next
	}
	l.head.next = last
	last.prev = l.head
	l.tail.prev = first
	first.next = l.tail
	return nil
}

// Filter copies the elements satisfying filterFn into a new list, order
// preserved, configuration inherited.
func (l *LinkedList) Filter(filterFn FilterFunc) (*LinkedList, error) {
	if !l.ok() || filterFn == nil {
		return nil, ErrNilPointer
	}
	res, err := NewLinkedList(l.elementSize)
	if err != nil {
		return nil, err
	}
	res.copyConfiguration(l)
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		if !filterFn(cur.data) {
			continue
		}
		if err := res.InsertTailValue(cur.data); err != nil {
			res.Destroy()
			return nil, err
		}
	}
	return res, nil
}

// Map builds a list of newElementSize elements produced by mapFn. The result
// inherits no callbacks: the element type changed, so free/copy/print/key
// handling is the caller's to reconfigure.
func (l *LinkedList) Map(mapFn MapFunc, newElementSize int) (*LinkedList, error) {
	if !l.ok() || mapFn == nil {
		return nil, ErrNilPointer
	}
	res, err := NewLinkedList(newElementSize)
	if err != nil {
		return nil, err
	}
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		block := make([]byte, newElementSize)
		mapFn(block, cur.data)
		if err := res.InsertTailValue(block); err != nil {
			res.Destroy()
			return nil, err
		}
	}
	return res, nil
}

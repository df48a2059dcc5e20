package list

type ownershipMode int

const (
	// ownedCopy: the list allocated the block and copied the caller's bytes.
	ownedCopy ownershipMode = iota
	// adoptedPointer: the block came from the caller and ownership
	// transferred to the list at insertion.
	adoptedPointer
)

type node struct {
	data []byte
	prev *node
	next *node
	mode ownershipMode
}

// LinkedList is a doubly linked list of fixed-size elements bounded by a
// sentinel pair. The sentinels never hold data and close the structure at
// both ends, so every real node always has two neighbors. An empty list is
// exactly head.next == tail; there is no nil-based empty representation.
type LinkedList struct {
	head        *node
	tail        *node
	length      int
	elementSize int
	maxSize     int
	policy      OverflowPolicy

	printFn PrintFunc
	freeFn  FreeFunc
	copyFn  CopyFunc
	keyFn   KeyFunc
}

var _ List = (*LinkedList)(nil)

// NewLinkedList creates an empty list storing elements of elementSize bytes,
// unbounded by default. The comparator is not stored; operations that need
// one take it per call.
func NewLinkedList(elementSize int) (*LinkedList, error) {
	if elementSize <= 0 {
		return nil, ErrInvalidOperation
	}
	l := &LinkedList{
		head:        &node{},
		tail:        &node{},
		elementSize: elementSize,
		maxSize:     Unlimited,
		policy:      RejectNewWhenFull,
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	return l, nil
}

// ok reports whether l is usable: non-nil and not destroyed.
func (l *LinkedList) ok() bool {
	return l != nil && l.head != nil
}

func (l *LinkedList) SetPrintFunc(fn PrintFunc) {
	if l.ok() {
		l.printFn = fn
	}
}

func (l *LinkedList) SetFreeFunc(fn FreeFunc) {
	if l.ok() {
		l.freeFn = fn
	}
}

func (l *LinkedList) SetCopyFunc(fn CopyFunc) {
	if l.ok() {
		l.copyFn = fn
	}
}

func (l *LinkedList) SetKeyFunc(fn KeyFunc) {
	if l.ok() {
		l.keyFn = fn
	}
}

// SetMaxSize updates the capacity bound and overflow policy. Shrinking below
// the current length evicts oldest-first under EvictOldestWhenFull, so the
// shrink is atomic with the eviction; under RejectNewWhenFull the overflow is
// reported as ErrListFull and the bound still takes effect for future inserts.
func (l *LinkedList) SetMaxSize(maxSize int, policy OverflowPolicy) error {
	if !l.ok() {
		return ErrNilPointer
	}
	if maxSize < 0 {
		return ErrInvalidOperation
	}
	l.maxSize = maxSize
	l.policy = policy
	if maxSize == Unlimited || l.length <= maxSize {
		return nil
	}
	if policy == RejectNewWhenFull {
		return ErrListFull
	}
	for l.length > maxSize {
		if err := l.DeleteHead(); err != nil {
			return err
		}
	}
	return nil
}

func (l *LinkedList) Len() int {
	if !l.ok() {
		return 0
	}
	return l.length
}

func (l *LinkedList) IsEmpty() bool {
	return !l.ok() || l.length == 0
}

func (l *LinkedList) ElementSize() int {
	if !l.ok() {
		return 0
	}
	return l.elementSize
}

// nodeAt walks from the nearer end: forward when index is in the first half,
// backward otherwise. Callers guarantee 0 <= index < length.
func (l *LinkedList) nodeAt(index int) *node {
	if index <= l.length/2 {
		cur := l.head.next
		for i := 0; i < index; i++ {
			cur = cur.next
		}
		return cur
	}
	cur := l.tail.prev
	for i := l.length - 1; i > index; i-- {
		cur = cur.prev
	}
	return cur
}

type iterator struct {
	next      *node
	end       *node
	direction Direction
}

func (l *LinkedList) iterate(d Direction) *iterator {
	if d == StartFromTail {
		return &iterator{next: l.tail.prev, end: l.head, direction: d}
	}
	return &iterator{next: l.head.next, end: l.tail, direction: d}
}

func (it *iterator) Next() *node {
	cur := it.next
	if cur == it.end {
		return nil
	}
	if it.direction == StartFromTail {
		it.next = cur.prev
	} else {
		it.next = cur.next
	}
	return cur
}

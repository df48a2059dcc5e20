package list

// deleteNode is the single core deletion step: unlink, release the data via
// the free callback, drop the references, shrink. The free callback runs for
// both ownership modes since the list owns the block either way by now.
// Sentinels are not deletable.
func (l *LinkedList) deleteNode(n *node) error {
	if !l.ok() || n == nil {
		return ErrNilPointer
	}
	if n == l.head || n == l.tail {
		return ErrInvalidOperation
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	if l.freeFn != nil {
		l.freeFn(n.data)
	}
	n.data = nil
	n.prev, n.next = nil, nil
	l.length--
	return nil
}

func (l *LinkedList) DeleteHead() error {
	if !l.ok() {
		return ErrNilPointer
	}
	if l.length == 0 {
		return ErrInvalidOperation
	}
	return l.deleteNode(l.head.next)
}

func (l *LinkedList) DeleteTail() error {
	if !l.ok() {
		return ErrNilPointer
	}
	if l.length == 0 {
		return ErrInvalidOperation
	}
	return l.deleteNode(l.tail.prev)
}

func (l *LinkedList) DeleteIndex(index int) error {
	if !l.ok() {
		return ErrNilPointer
	}
	if l.length == 0 {
		return ErrInvalidOperation
	}
	if index < 0 || index >= l.length {
		return ErrIndexOutOfBounds
	}
	return l.deleteNode(l.nodeAt(index))
}

// RemoveMatching scans from the chosen end and deletes elements satisfying
// pred, up to count of them (DeleteAllOccurrences removes every match). The
// iterator advances before the deletion, so removing the current node never
// breaks the walk. Returns ErrElementNotFound when nothing matched.
func (l *LinkedList) RemoveMatching(count int, direction Direction, pred PredicateFunc) error {
	if !l.ok() {
		return ErrNilPointer
	}
	if pred == nil {
		return ErrInvalidOperation
	}
	if l.length == 0 {
		return ErrElementNotFound
	}
	removed := 0
	it := l.iterate(direction)
	for cur := it.Next(); cur != nil; cur = it.Next() {
		if count != DeleteAllOccurrences && removed >= count {
			break
		}
		if pred(cur.data) {
			if err := l.deleteNode(cur); err != nil {
				return err
			}
			removed++
		}
	}
	if removed == 0 {
		return ErrElementNotFound
	}
	return nil
}

// Clear removes every element head-first. Calling it on an empty list is a
// no-op that leaves the sentinels mutually linked.
func (l *LinkedList) Clear() error {
	if !l.ok() {
		return ErrNilPointer
	}
	for l.length > 0 {
		if err := l.DeleteHead(); err != nil {
			return err
		}
	}
	return nil
}

// Destroy clears the list and severs the sentinel pair. Safe on a nil list;
// any later operation on a destroyed list reports ErrNilPointer.
func (l *LinkedList) Destroy() {
	if !l.ok() {
		return
	}
	_ = l.Clear()
	l.head.next = nil
	l.tail.prev = nil
	l.head, l.tail = nil, nil
}

package list

// newNode builds the node for one element. Value mode allocates a fresh
// block and fills it with the copy callback when present, else a raw byte
// copy; pointer mode adopts the caller's block as-is.
func (l *LinkedList) newNode(data []byte, mode ownershipMode) *node {
	if mode == ownedCopy {
		block := make([]byte, l.elementSize)
		if l.copyFn != nil {
			l.copyFn(block, data)
		} else {
			copy(block, data[:l.elementSize])
		}
		return &node{data: block, mode: ownedCopy}
	}
	return &node{data: data, mode: adoptedPointer}
}

// makeRoom applies the capacity policy before any node is created. Eviction
// goes through normal deletion semantics, free callback included.
func (l *LinkedList) makeRoom() error {
	if l.maxSize == Unlimited || l.length < l.maxSize {
		return nil
	}
	if l.policy == RejectNewWhenFull {
		return ErrListFull
	}
	return l.DeleteHead()
}

func (l *LinkedList) prepareInsert(data []byte) error {
	if !l.ok() || data == nil {
		return ErrNilPointer
	}
	if len(data) < l.elementSize {
		return ErrInvalidOperation
	}
	return l.makeRoom()
}

// linkBefore splices n in just before at. Sentinels make this the only
// linking step every insertion position shares.
func (l *LinkedList) linkBefore(n, at *node) {
	n.next = at
	n.prev = at.prev
	at.prev.next = n
	at.prev = n
	l.length++
}

// InsertHeadValue copies data into list-owned memory and links it first.
func (l *LinkedList) InsertHeadValue(data []byte) error {
	if err := l.prepareInsert(data); err != nil {
		return err
	}
	l.linkBefore(l.newNode(data, ownedCopy), l.head.next)
	return nil
}

// InsertTailValue copies data into list-owned memory and links it last.
func (l *LinkedList) InsertTailValue(data []byte) error {
	if err := l.prepareInsert(data); err != nil {
		return err
	}
	l.linkBefore(l.newNode(data, ownedCopy), l.tail)
	return nil
}

// InsertIndexValue copies data in just before index. Index 0 degenerates to
// a head insert and index >= length to a tail insert.
func (l *LinkedList) InsertIndexValue(index int, data []byte) error {
	if index < 0 {
		if !l.ok() {
			return ErrNilPointer
		}
		return ErrIndexOutOfBounds
	}
	if err := l.prepareInsert(data); err != nil {
		return err
	}
	at := l.tail
	if index < l.length {
		at = l.nodeAt(index)
	}
	l.linkBefore(l.newNode(data, ownedCopy), at)
	return nil
}

// InsertHeadPointer adopts the caller's block without copying; the list owns
// it from this point on. The caller must not free, reuse or alias the block
// afterwards.
func (l *LinkedList) InsertHeadPointer(data []byte) error {
	if err := l.prepareInsert(data); err != nil {
		return err
	}
	l.linkBefore(l.newNode(data, adoptedPointer), l.head.next)
	return nil
}

// InsertTailPointer adopts the caller's block and links it last. Same
// ownership contract as InsertHeadPointer.
func (l *LinkedList) InsertTailPointer(data []byte) error {
	if err := l.prepareInsert(data); err != nil {
		return err
	}
	l.linkBefore(l.newNode(data, adoptedPointer), l.tail)
	return nil
}

// InsertIndexPointer adopts the caller's block just before index.
func (l *LinkedList) InsertIndexPointer(index int, data []byte) error {
	if index < 0 {
		if !l.ok() {
			return ErrNilPointer
		}
		return ErrIndexOutOfBounds
	}
	if err := l.prepareInsert(data); err != nil {
		return err
	}
	at := l.tail
	if index < l.length {
		at = l.nodeAt(index)
	}
	l.linkBefore(l.newNode(data, adoptedPointer), at)
	return nil
}

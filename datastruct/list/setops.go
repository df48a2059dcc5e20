package list

// MinBy returns the handle of the smallest element under compare. The first
// element seeds the scan and ties keep the earliest-seen one.
func (l *LinkedList) MinBy(compare CompareFunc) ([]byte, error) {
	if !l.ok() {
		return nil, ErrNilPointer
	}
	if compare == nil {
		return nil, ErrNoCompareFunc
	}
	if l.length == 0 {
		return nil, ErrElementNotFound
	}
	best := l.head.next.data
	for cur := l.head.next.next; cur != l.tail; cur = cur.next {
		if compare(cur.data, best) < 0 {
			best = cur.data
		}
	}
	return best, nil
}

// MaxBy is MinBy's mirror; ties keep the earliest-seen element too.
func (l *LinkedList) MaxBy(compare CompareFunc) ([]byte, error) {
	if !l.ok() {
		return nil, ErrNilPointer
	}
	if compare == nil {
		return nil, ErrNoCompareFunc
	}
	if l.length == 0 {
		return nil, ErrElementNotFound
	}
	best := l.head.next.data
	for cur := l.head.next.next; cur != l.tail; cur = cur.next {
		if compare(cur.data, best) > 0 {
			best = cur.data
		}
	}
	return best, nil
}

// containsCompare is the reference linear membership test.
func (l *LinkedList) containsCompare(data []byte, compare CompareFunc) bool {
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		if compare(cur.data, data) == 0 {
			return true
		}
	}
	return false
}

// memberhood returns a membership test and a recorder over res, hashed when
// a key function is installed, the accumulating-result linear scan otherwise.
func (l *LinkedList) memberhood(res *LinkedList, compare CompareFunc) (func([]byte) bool, func([]byte)) {
	if l.keyFn == nil {
		return func(data []byte) bool { return res.containsCompare(data, compare) },
			func([]byte) {}
	}
	idx := newMemberIndex(l.keyFn)
	return func(data []byte) bool { return idx.contains(data, compare) },
		idx.add
}

// Unique keeps the first occurrence of each comparison-equal group.
func (l *LinkedList) Unique(compare CompareFunc) (*LinkedList, error) {
	return l.UniqueAdvanced(compare, StartFromHead)
}

// UniqueAdvanced deduplicates by compare. StartFromHead keeps the first-seen
// occurrence; StartFromTail keeps the last-seen one by walking backward and
// head-inserting, which preserves the original relative order.
func (l *LinkedList) UniqueAdvanced(compare CompareFunc, order Direction) (*LinkedList, error) {
	if !l.ok() {
		return nil, ErrNilPointer
	}
	if compare == nil {
		return nil, ErrNoCompareFunc
	}
	res, err := NewLinkedList(l.elementSize)
	if err != nil {
		return nil, err
	}
	res.copyConfiguration(l)
	seen, record := l.memberhood(res, compare)
	it := l.iterate(order)
	for cur := it.Next(); cur != nil; cur = it.Next() {
		if seen(cur.data) {
			continue
		}
		if order == StartFromTail {
			err = res.InsertHeadValue(cur.data)
		} else {
			err = res.InsertTailValue(cur.data)
		}
		if err != nil {
			res.Destroy()
			return nil, err
		}
		record(cur.data)
	}
	return res, nil
}

// Intersection builds the elements of list1 also present in list2, in
// list1's order, duplicates eliminated. With key functions on both inputs
// the membership tests run over hashed buckets instead of full scans; the
// reported sequence is identical.
func Intersection(list1, list2 *LinkedList, compare CompareFunc) (*LinkedList, error) {
	if !list1.ok() || !list2.ok() {
		return nil, ErrNilPointer
	}
	if compare == nil {
		return nil, ErrNoCompareFunc
	}
	if list1.elementSize != list2.elementSize {
		return nil, ErrInvalidOperation
	}
	res, err := NewLinkedList(list1.elementSize)
	if err != nil {
		return nil, err
	}
	res.copyConfiguration(list1)

	inOther := func(data []byte) bool { return list2.containsCompare(data, compare) }
	if list1.keyFn != nil && list2.keyFn != nil {
		otherIdx := newMemberIndex(list2.keyFn)
		for cur := list2.head.next; cur != list2.tail; cur = cur.next {
			otherIdx.add(cur.data)
		}
		inOther = func(data []byte) bool { return otherIdx.contains(data, compare) }
	}
	inRes, record := list1.memberhood(res, compare)

	for cur := list1.head.next; cur != list1.tail; cur = cur.next {
		if !inOther(cur.data) || inRes(cur.data) {
			continue
		}
		if err := res.InsertTailValue(cur.data); err != nil {
			res.Destroy()
			return nil, err
		}
		record(cur.data)
	}
	return res, nil
}

// Union builds the deduplicated elements of list1 followed by the elements
// of list2 not already present.
func Union(list1, list2 *LinkedList, compare CompareFunc) (*LinkedList, error) {
	if !list1.ok() || !list2.ok() {
		return nil, ErrNilPointer
	}
	if compare == nil {
		return nil, ErrNoCompareFunc
	}
	if list1.elementSize != list2.elementSize {
		return nil, ErrInvalidOperation
	}
	res, err := list1.Unique(compare)
	if err != nil {
		return nil, err
	}
	inRes, record := res.memberhood(res, compare)
	if res.keyFn != nil {
		for cur := res.head.next; cur != res.tail; cur = cur.next {
			record(cur.data)
		}
	}
	for cur := list2.head.next; cur != list2.tail; cur = cur.next {
		if inRes(cur.data) {
			continue
		}
		if err := res.InsertTailValue(cur.data); err != nil {
			res.Destroy()
			return nil, err
		}
		record(cur.data)
	}
	return res, nil
}

package list

// Sort orders the list ascending by compare, descending when reverse is set.
// Adjacent passes swap the data handles between nodes, never the links, so
// both ownership modes ride along untouched: no block is reallocated or
// freed while sorting. Equal keys carry no stability guarantee.
func (l *LinkedList) Sort(compare CompareFunc, reverse bool) error {
	if !l.ok() {
		return ErrNilPointer
	}
	if compare == nil {
		return ErrNoCompareFunc
	}
	if l.length < 2 {
		return nil
	}
	for swapped := true; swapped; {
		swapped = false
		for cur := l.head.next; cur.next != l.tail; cur = cur.next {
			next := cur.next
			c := compare(cur.data, next.data)
			if reverse {
				c = -c
			}
			if c > 0 {
				cur.data, next.data = next.data, cur.data
				cur.mode, next.mode = next.mode, cur.mode
				swapped = true
			}
		}
	}
	return nil
}

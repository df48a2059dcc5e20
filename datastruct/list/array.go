package list

// FromArray clears the list, then appends value-mode copies of n elements
// taken from buf at element-size strides. Destructive on purpose.
func (l *LinkedList) FromArray(buf []byte, n int) error {
	if !l.ok() || buf == nil {
		return ErrNilPointer
	}
	if n < 0 || len(buf) < n*l.elementSize {
		return ErrIndexOutOfBounds
	}
	if err := l.Clear(); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := l.InsertTailValue(buf[i*l.elementSize : (i+1)*l.elementSize]); err != nil {
			return err
		}
	}
	return nil
}

// ToArray returns a contiguous byte image of the element sequence,
// element-size strided. Round-trips byte-for-byte through FromArray.
func (l *LinkedList) ToArray() ([]byte, error) {
	if !l.ok() {
		return nil, ErrNilPointer
	}
	res := make([]byte, 0, l.length*l.elementSize)
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		res = append(res, cur.data[:l.elementSize]...)
	}
	return res, nil
}

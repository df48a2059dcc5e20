package list

import (
	"errors"
	"testing"

	"golist/lib/utils"
)

func TestRotateScenario(t *testing.T) {
	l := newIntList(t, 10, 20, 30, 40, 50)
	if err := l.Rotate(2); err != nil {
		t.Fatal(err)
	}
	assertValues(t, l, []int32{40, 50, 10, 20, 30})
	if err := l.Reverse(); err != nil {
		t.Fatal(err)
	}
	assertValues(t, l, []int32{30, 20, 10, 50, 40})
	assertWellFormed(t, l)
}

func TestRotateInverse(t *testing.T) {
	vals := []int32{1, 2, 3, 4, 5, 6, 7}
	for k := 0; k < len(vals); k++ {
		l := newIntList(t, vals...)
		if err := l.Rotate(k); err != nil {
			t.Fatal(err)
		}
		if err := l.Rotate(len(vals) - k); err != nil {
			t.Fatal(err)
		}
		assertValues(t, l, vals)
	}
}

func TestRotateNegativeAndOversized(t *testing.T) {
	l := newIntList(t, 1, 2, 3, 4)
	if err := l.Rotate(-1); err != nil {
		t.Fatal(err)
	}
	assertValues(t, l, []int32{2, 3, 4, 1})
	if err := l.Rotate(5); err != nil {
		t.Fatal(err)
	}
	assertValues(t, l, []int32{1, 2, 3, 4})
	assertWellFormed(t, l)

	single := newIntList(t, 9)
	if err := single.Rotate(3); err != nil {
		t.Fatal(err)
	}
	assertValues(t, single, []int32{9})
}

func TestReverseTwiceRestoresOrder(t *testing.T) {
	vals := []int32{1, 2, 3, 4, 5, 6}
	l := newIntList(t, vals...)
	if err := l.Reverse(); err != nil {
		t.Fatal(err)
	}
	assertValues(t, l, []int32{6, 5, 4, 3, 2, 1})
	assertWellFormed(t, l)
	if err := l.Reverse(); err != nil {
		t.Fatal(err)
	}
	assertValues(t, l, vals)
	assertWellFormed(t, l)
}

func TestCopyIsIndependent(t *testing.T) {
	l := newIntList(t, 1, 2, 3)
	l.SetCopyFunc(func(dst, src []byte) {
		copy(dst, src[:4])
	})
	dup, err := l.Copy()
	if err != nil {
		t.Fatal(err)
	}
	if dup.copyFn == nil {
		t.Error("copy did not inherit configuration")
	}
	if err := dup.DeleteHead(); err != nil {
		t.Fatal(err)
	}
	assertValues(t, l, []int32{1, 2, 3})
	assertValues(t, dup, []int32{2, 3})
}

func TestExtendAndConcat(t *testing.T) {
	a := newIntList(t, 1, 2)
	b := newIntList(t, 3, 4)
	if err := a.Extend(b); err != nil {
		t.Fatal(err)
	}
	assertValues(t, a, []int32{1, 2, 3, 4})

	c, err := Concat(a, b)
	if err != nil {
		t.Fatal(err)
	}
	assertValues(t, c, []int32{1, 2, 3, 4, 3, 4})

	other, err := NewLinkedList(8)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Extend(other); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("extend with mismatched element size: %v", err)
	}
}

func TestExtendWithSelfTerminates(t *testing.T) {
	l := newIntList(t, 1, 2)
	if err := l.Extend(l); err != nil {
		t.Fatal(err)
	}
	assertValues(t, l, []int32{1, 2, 1, 2})
}

func TestSlice(t *testing.T) {
	l := newIntList(t, 1, 2, 3, 4, 5)
	s, err := l.Slice(1, 4)
	if err != nil {
		t.Fatal(err)
	}
	assertValues(t, s, []int32{2, 3, 4})

	// end clamps to length
	s2, err := l.Slice(3, 100)
	if err != nil {
		t.Fatal(err)
	}
	assertValues(t, s2, []int32{4, 5})

	if _, err := l.Slice(3, 3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("start >= end: %v", err)
	}
	if _, err := l.Slice(5, 6); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("start >= length: %v", err)
	}
}

func TestFilter(t *testing.T) {
	l := newIntList(t, 1, 2, 3, 4, 5, 6)
	even, err := l.Filter(func(data []byte) bool {
		return utils.BytesToInt32(data)%2 == 0
	})
	if err != nil {
		t.Fatal(err)
	}
	assertValues(t, even, []int32{2, 4, 6})
	assertValues(t, l, []int32{1, 2, 3, 4, 5, 6})
}

func TestMapChangesElementSize(t *testing.T) {
	l := newIntList(t, 1, 2, 3)
	l.SetFreeFunc(func([]byte) {})
	doubled, err := l.Map(func(dst, src []byte) {
		copy(dst, utils.Float64ToBytes(float64(utils.BytesToInt32(src))*1.5))
	}, 8)
	if err != nil {
		t.Fatal(err)
	}
	if doubled.ElementSize() != 8 {
		t.Errorf("mapped element size %d, want 8", doubled.ElementSize())
	}
	if doubled.freeFn != nil {
		t.Error("map must not inherit the free callback")
	}
	want := []float64{1.5, 3, 4.5}
	got := make([]float64, 0, 3)
	doubled.ForEach(func(i int, data []byte) bool {
		got = append(got, utils.BytesToFloat64(data))
		return true
	})
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mapped values %v, want %v", got, want)
			break
		}
	}
}

func TestArrayRoundTrip(t *testing.T) {
	l := newIntList(t, 10, 20, 30)
	img, err := l.ToArray()
	if err != nil {
		t.Fatal(err)
	}
	other := newIntList(t, 99)
	if err := other.FromArray(img, 3); err != nil {
		t.Fatal(err)
	}
	img2, err := other.ToArray()
	if err != nil {
		t.Fatal(err)
	}
	if !utils.BytesEqual(img, img2) {
		t.Error("array round trip not byte-identical")
	}
	assertValues(t, other, []int32{10, 20, 30})

	// Odd element sizes must round-trip too.
	odd, err := NewLinkedList(3)
	if err != nil {
		t.Fatal(err)
	}
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if err := odd.FromArray(src, 3); err != nil {
		t.Fatal(err)
	}
	img3, err := odd.ToArray()
	if err != nil {
		t.Fatal(err)
	}
	if !utils.BytesEqual(src, img3) {
		t.Error("odd-size round trip not byte-identical")
	}
}

func TestFromArrayClearsDestination(t *testing.T) {
	l := newIntList(t, 7, 8, 9)
	if err := l.FromArray(utils.Int32SliceToBytes([]int32{1, 2}), 2); err != nil {
		t.Fatal(err)
	}
	assertValues(t, l, []int32{1, 2})
}

func TestFromArrayShortBuffer(t *testing.T) {
	l := newIntList(t)
	if err := l.FromArray([]byte{1, 2, 3}, 2); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("short buffer: %v", err)
	}
}

package list

import (
	"errors"
	"testing"

	"golist/lib/utils"
)

func TestSort(t *testing.T) {
	l := newIntList(t, 5, 1, 4, 2, 3)
	if err := l.Sort(compareInt32, false); err != nil {
		t.Fatal(err)
	}
	assertValues(t, l, []int32{1, 2, 3, 4, 5})
	if err := l.Sort(compareInt32, true); err != nil {
		t.Fatal(err)
	}
	assertValues(t, l, []int32{5, 4, 3, 2, 1})
	assertWellFormed(t, l)

	if err := l.Sort(nil, false); !errors.Is(err, ErrNoCompareFunc) {
		t.Errorf("sort without comparator: %v", err)
	}
	empty := newIntList(t)
	if err := empty.Sort(compareInt32, false); err != nil {
		t.Errorf("sort on empty list: %v", err)
	}
}

func TestSortKeepsOwnership(t *testing.T) {
	l := newIntList(t)
	frees := 0
	l.SetFreeFunc(func([]byte) {
		frees++
	})
	if err := l.InsertTailPointer(utils.Int32ToBytes(3)); err != nil {
		t.Fatal(err)
	}
	if err := l.InsertTailValue(utils.Int32ToBytes(1)); err != nil {
		t.Fatal(err)
	}
	if err := l.Sort(compareInt32, false); err != nil {
		t.Fatal(err)
	}
	if frees != 0 {
		t.Errorf("sort freed %d blocks", frees)
	}
	assertValues(t, l, []int32{1, 3})
	l.Destroy()
	if frees != 2 {
		t.Errorf("destroy after sort freed %d blocks, want 2", frees)
	}
}

func TestMinByMaxBy(t *testing.T) {
	l := newIntList(t, 3, 1, 4, 1, 5)
	min, err := l.MinBy(compareInt32)
	if err != nil {
		t.Fatal(err)
	}
	if utils.BytesToInt32(min) != 1 {
		t.Errorf("min = %d", utils.BytesToInt32(min))
	}
	// Ties keep the earliest-seen handle.
	first, err := l.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if &min[0] != &first[0] {
		t.Error("min tie did not keep the earliest element")
	}
	max, err := l.MaxBy(compareInt32)
	if err != nil {
		t.Fatal(err)
	}
	if utils.BytesToInt32(max) != 5 {
		t.Errorf("max = %d", utils.BytesToInt32(max))
	}

	empty := newIntList(t)
	if _, err := empty.MinBy(compareInt32); !errors.Is(err, ErrElementNotFound) {
		t.Errorf("min on empty: %v", err)
	}
	if _, err := l.MaxBy(nil); !errors.Is(err, ErrNoCompareFunc) {
		t.Errorf("max without comparator: %v", err)
	}
}

func TestUniqueDirections(t *testing.T) {
	l := newIntList(t, 1, 2, 2, 3, 1)
	head, err := l.UniqueAdvanced(compareInt32, StartFromHead)
	if err != nil {
		t.Fatal(err)
	}
	assertValues(t, head, []int32{1, 2, 3})

	tail, err := l.UniqueAdvanced(compareInt32, StartFromTail)
	if err != nil {
		t.Fatal(err)
	}
	assertValues(t, tail, []int32{2, 3, 1})

	if _, err := l.Unique(nil); !errors.Is(err, ErrNoCompareFunc) {
		t.Errorf("unique without comparator: %v", err)
	}
}

func TestIntersection(t *testing.T) {
	a := newIntList(t, 1, 2, 3, 4, 2)
	b := newIntList(t, 2, 4, 6)
	res, err := Intersection(a, b, compareInt32)
	if err != nil {
		t.Fatal(err)
	}
	assertValues(t, res, []int32{2, 4})
}

func TestUnion(t *testing.T) {
	a := newIntList(t, 1, 2, 2, 3)
	b := newIntList(t, 3, 4, 5, 4)
	res, err := Union(a, b, compareInt32)
	if err != nil {
		t.Fatal(err)
	}
	assertValues(t, res, []int32{1, 2, 3, 4, 5})
}

// The hashed membership index must report exactly what the linear scans do.
func TestSetOpsWithKeyFunction(t *testing.T) {
	key := func(data []byte) []byte { return data[:4] }
	a := newIntList(t, 1, 2, 3, 4, 2, 1)
	b := newIntList(t, 2, 4, 6, 2)
	a.SetKeyFunc(key)
	b.SetKeyFunc(key)

	uniq, err := a.Unique(compareInt32)
	if err != nil {
		t.Fatal(err)
	}
	assertValues(t, uniq, []int32{1, 2, 3, 4})

	uniqTail, err := a.UniqueAdvanced(compareInt32, StartFromTail)
	if err != nil {
		t.Fatal(err)
	}
	assertValues(t, uniqTail, []int32{3, 4, 2, 1})

	inter, err := Intersection(a, b, compareInt32)
	if err != nil {
		t.Fatal(err)
	}
	assertValues(t, inter, []int32{2, 4})

	un, err := Union(a, b, compareInt32)
	if err != nil {
		t.Fatal(err)
	}
	assertValues(t, un, []int32{1, 2, 3, 4, 6})
}

func TestSetHashSeedStillMatches(t *testing.T) {
	defer SetHashSeed(make([]byte, 16))
	SetHashSeed([]byte("0123456789abcdef"))
	a := newIntList(t, 5, 5, 7)
	a.SetKeyFunc(func(data []byte) []byte { return data[:4] })
	uniq, err := a.Unique(compareInt32)
	if err != nil {
		t.Fatal(err)
	}
	assertValues(t, uniq, []int32{5, 7})
}

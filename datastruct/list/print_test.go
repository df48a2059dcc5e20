package list

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"golist/lib/utils"
)

func printInt32(w io.Writer, data []byte) {
	fmt.Fprintf(w, "%d", utils.BytesToInt32(data))
}

func TestToString(t *testing.T) {
	l := newIntList(t, 1, 2, 3)
	if _, err := l.ToString(", "); !errors.Is(err, ErrNoPrintFunc) {
		t.Errorf("to string without print function: %v", err)
	}
	l.SetPrintFunc(printInt32)
	s, err := l.ToString(", ")
	if err != nil {
		t.Fatal(err)
	}
	if s != "1, 2, 3" {
		t.Errorf("ToString = %q", s)
	}

	empty := newIntList(t)
	empty.SetPrintFunc(printInt32)
	if s, err := empty.ToString(","); err != nil || s != "" {
		t.Errorf("empty ToString = %q, %v", s, err)
	}
}

func TestPrintListAdvanced(t *testing.T) {
	l := newIntList(t, 7, 8)
	l.SetPrintFunc(printInt32)
	var buf bytes.Buffer
	if err := l.PrintListAdvanced(&buf, true, true, " | "); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "List len: 2\n") {
		t.Errorf("missing size line: %q", out)
	}
	if !strings.Contains(out, "[0]: 7") || !strings.Contains(out, "[1]: 8") {
		t.Errorf("missing indexed elements: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("missing final newline: %q", out)
	}

	empty := newIntList(t)
	empty.SetPrintFunc(printInt32)
	if err := empty.PrintList(&buf); !errors.Is(err, ErrElementNotFound) {
		t.Errorf("print on empty list: %v", err)
	}
}

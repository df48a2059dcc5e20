package persist

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golist/datastruct/list"
	"golist/lib/utils"
)

// Primitive widths the text format renders as literal tokens. Anything else
// becomes space-separated hex byte pairs, one element per line.
const (
	charSize  = 1
	int32Size = 4
	floatSize = 8
)

func encodeText(buf *bytes.Buffer, l list.List, separator string) error {
	if separator == "" {
		separator = "\n"
	}
	size := l.ElementSize()
	l.ForEach(func(i int, data []byte) bool {
		if i > 0 {
			buf.WriteString(separator)
		}
		writeToken(buf, data[:size], size)
		return true
	})
	// The file always ends with a newline, whatever the separator was.
	if buf.Len() == 0 || buf.Bytes()[buf.Len()-1] != '\n' {
		buf.WriteByte('\n')
	}
	return nil
}

func writeToken(buf *bytes.Buffer, data []byte, size int) {
	switch size {
	case int32Size:
		buf.WriteString(strconv.FormatInt(int64(utils.BytesToInt32(data)), 10))
	case floatSize:
		buf.WriteString(strconv.FormatFloat(utils.BytesToFloat64(data), 'g', 15, 64))
	case charSize:
		buf.WriteByte(data[0])
	default:
		for i, b := range data {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(buf, "%02X", b)
		}
	}
}

func decodeText(content []byte, elementSize int, separator string) (*list.LinkedList, error) {
	res, err := list.NewLinkedList(elementSize)
	if err != nil {
		return nil, err
	}
	if separator == "" {
		err = parseWhitespace(res, content, elementSize)
	} else {
		err = parseSeparated(res, content, elementSize, separator)
	}
	if err != nil {
		res.Destroy()
		return nil, err
	}
	return res, nil
}

// parseWhitespace is the default tokenization: whitespace-delimited numbers,
// raw characters, or one hex-pair line per element.
func parseWhitespace(res *list.LinkedList, content []byte, elementSize int) error {
	switch elementSize {
	case int32Size:
		for _, tok := range strings.Fields(string(content)) {
			v, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				break
			}
			if err := res.InsertTailValue(utils.Int32ToBytes(int32(v))); err != nil {
				return err
			}
		}
	case floatSize:
		for _, tok := range strings.Fields(string(content)) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				break
			}
			if err := res.InsertTailValue(utils.Float64ToBytes(v)); err != nil {
				return err
			}
		}
	case charSize:
		for _, b := range content {
			if b == '\n' || b == '\r' {
				continue
			}
			if err := res.InsertTailValue([]byte{b}); err != nil {
				return err
			}
		}
	default:
		for _, line := range strings.Split(string(content), "\n") {
			block := make([]byte, 0, elementSize)
			for _, tok := range strings.Fields(line) {
				if len(block) == elementSize {
					break
				}
				b, err := strconv.ParseUint(tok, 16, 8)
				if err != nil {
					break
				}
				block = append(block, byte(b))
			}
			if len(block) != elementSize {
				continue
			}
			if err := res.InsertTailValue(block); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseSeparated splits the whole content on the exact separator substring.
// Only the primitive widths round-trip this way.
func parseSeparated(res *list.LinkedList, content []byte, elementSize int, separator string) error {
	if elementSize != int32Size && elementSize != floatSize && elementSize != charSize {
		return list.ErrInvalidOperation
	}
	for _, tok := range strings.Split(string(content), separator) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		switch elementSize {
		case int32Size:
			v, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				continue
			}
			if err := res.InsertTailValue(utils.Int32ToBytes(int32(v))); err != nil {
				return err
			}
		case floatSize:
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				continue
			}
			if err := res.InsertTailValue(utils.Float64ToBytes(v)); err != nil {
				return err
			}
		case charSize:
			if err := res.InsertTailValue([]byte{tok[0]}); err != nil {
				return err
			}
		}
	}
	return nil
}

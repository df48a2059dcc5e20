package utils

import (
	"encoding/binary"
	"math"
)

func BytesEqual(a, b []byte) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func CloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	res := make([]byte, len(b))
	copy(res, b)
	return res
}

// Element codecs for the primitive widths the text persistence format
// understands: 4 bytes (int32), 8 bytes (float64), 1 byte (char).
// Native byte order, same as the binary persistence header.

func Int32ToBytes(v int32) []byte {
	res := make([]byte, 4)
	binary.NativeEndian.PutUint32(res, uint32(v))
	return res
}

func BytesToInt32(b []byte) int32 {
	return int32(binary.NativeEndian.Uint32(b))
}

func Float64ToBytes(v float64) []byte {
	res := make([]byte, 8)
	binary.NativeEndian.PutUint64(res, math.Float64bits(v))
	return res
}

func BytesToFloat64(b []byte) float64 {
	return math.Float64frombits(binary.NativeEndian.Uint64(b))
}

func Int32SliceToBytes(vals []int32) []byte {
	res := make([]byte, 0, len(vals)*4)
	for _, v := range vals {
		res = append(res, Int32ToBytes(v)...)
	}
	return res
}

func BytesToInt32Slice(b []byte) []int32 {
	res := make([]int32, 0, len(b)/4)
	for i := 0; i+4 <= len(b); i += 4 {
		res = append(res, BytesToInt32(b[i:i+4]))
	}
	return res
}

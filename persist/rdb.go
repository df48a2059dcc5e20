package persist

import (
	"bytes"
	"strconv"
	"time"

	"github.com/hdt3213/rdb/core"
	rdb "github.com/hdt3213/rdb/parser"

	"golist/datastruct/list"
)

// rdbKey is the key the element sequence is stored under inside the RDB
// image: a single database holding one list object.
const rdbKey = "golist:elements"

func encodeRDB(buf *bytes.Buffer, l list.List) error {
	enc := core.NewEncoder(buf).EnableCompress()
	if err := enc.WriteHeader(); err != nil {
		return err
	}
	aux := map[string]string{
		"golist-ver":   "1.0",
		"element-size": strconv.Itoa(l.ElementSize()),
		"ctime":        strconv.FormatInt(time.Now().Unix(), 10),
	}
	for k, v := range aux {
		if err := enc.WriteAux(k, v); err != nil {
			return err
		}
	}
	if l.Len() > 0 {
		if err := enc.WriteDBHeader(0, 1, 0); err != nil {
			return err
		}
		size := l.ElementSize()
		values := make([][]byte, 0, l.Len())
		l.ForEach(func(i int, data []byte) bool {
			values = append(values, data[:size])
			return true
		})
		if err := enc.WriteListObject(rdbKey, values); err != nil {
			return err
		}
	}
	return enc.WriteEnd()
}

func decodeRDB(content []byte, elementSize int) (*list.LinkedList, error) {
	res, err := list.NewLinkedList(elementSize)
	if err != nil {
		return nil, err
	}
	var loadErr error
	decoder := rdb.NewDecoder(bytes.NewReader(content))
	err = decoder.Parse(func(obj rdb.RedisObject) bool {
		if obj.GetType() != rdb.ListType || obj.GetKey() != rdbKey {
			return true
		}
		listObj := obj.(*rdb.ListObject)
		for _, v := range listObj.Values {
			// Every stored block must match the requested element size.
			if len(v) != elementSize {
				loadErr = list.ErrInvalidOperation
				return false
			}
			if loadErr = res.InsertTailValue(v); loadErr != nil {
				return false
			}
		}
		return true
	})
	if err == nil {
		err = loadErr
	}
	if err != nil {
		res.Destroy()
		return nil, err
	}
	return res, nil
}

package main

import (
	"fmt"
	"io"
	"os"

	"golist/config"
	"golist/datastruct/list"
	"golist/lib/logger"
	"golist/lib/utils"
	"golist/persist"
)

func printInt32(w io.Writer, data []byte) {
	fmt.Fprintf(w, "%d", utils.BytesToInt32(data))
}

func compareInt32(a, b []byte) int {
	av, bv := utils.BytesToInt32(a), utils.BytesToInt32(b)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	}
	return 0
}

func overflowPolicy() list.OverflowPolicy {
	if config.Properties.OverflowPolicy == "evict" {
		return list.EvictOldestWhenFull
	}
	return list.RejectNewWhenFull
}

func fileFormat() persist.Format {
	switch config.Properties.FileFormat {
	case "text":
		return persist.FormatText
	case "rdb":
		return persist.FormatRDB
	}
	return persist.FormatBinary
}

func show(l *list.LinkedList, label string) {
	s, err := l.ToString(", ")
	if err != nil {
		logger.Errorf("%s: %v", label, err)
		return
	}
	logger.Infof("%s: [%s]", label, s)
}

func main() {
	if len(os.Args) > 1 {
		config.SetupConfigProperties(os.Args[1])
	}
	logger.Setup(&logger.Settings{
		Path:       config.Properties.LogDir,
		Name:       config.Properties.LogName,
		Ext:        "log",
		TimeFormat: "2006-01-02",
	})

	l, err := list.NewLinkedList(4)
	if err != nil {
		logger.Fatal(err)
	}
	defer l.Destroy()
	l.SetPrintFunc(printInt32)

	if err := l.FromArray(utils.Int32SliceToBytes([]int32{10, 20, 30, 40, 50}), 5); err != nil {
		logger.Fatal(err)
	}
	show(l, "initial")

	if err := l.Rotate(2); err != nil {
		logger.Fatal(err)
	}
	show(l, "rotate(2)")

	if err := l.Reverse(); err != nil {
		logger.Fatal(err)
	}
	show(l, "reversed")

	if err := l.Sort(compareInt32, false); err != nil {
		logger.Fatal(err)
	}
	show(l, "sorted")

	if config.Properties.MaxSize > list.Unlimited {
		if err := l.SetMaxSize(config.Properties.MaxSize, overflowPolicy()); err != nil {
			logger.Warnf("max size %d: %v", config.Properties.MaxSize, err)
		} else {
			show(l, fmt.Sprintf("bounded to %d", config.Properties.MaxSize))
		}
	}

	dup, err := list.Concat(l, l)
	if err != nil {
		logger.Fatal(err)
	}
	uniq, err := dup.Unique(compareInt32)
	dup.Destroy()
	if err != nil {
		logger.Fatal(err)
	}
	show(uniq, "unique of self-concat")
	uniq.Destroy()

	filename := config.Properties.DataFilename
	if err := persist.Save(l, filename, fileFormat(), config.Properties.Separator); err != nil {
		logger.Fatal(err)
	}
	logger.Infof("saved %d elements to %s (%s format)",
		l.Len(), filename, config.Properties.FileFormat)

	loaded, err := persist.Load(filename, 4, fileFormat(), config.Properties.Separator)
	if err != nil {
		logger.Fatal(err)
	}
	defer loaded.Destroy()
	loaded.SetPrintFunc(printInt32)
	show(loaded, "loaded back")
}

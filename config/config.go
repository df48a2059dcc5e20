package config

import (
	"bufio"
	"golist/lib/logger"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
)

type ListProperties struct {
	ElementSize    int    `cfg:"element-size"`
	MaxSize        int    `cfg:"max-size"`
	OverflowPolicy string `cfg:"overflow-policy"` // reject | evict
	FileFormat     string `cfg:"file-format"`     // binary | text | rdb
	Separator      string `cfg:"separator"`
	DataFilename   string `cfg:"datafilename"`
	LogDir         string `cfg:"logdir"`
	LogName        string `cfg:"logname"`
}

var Properties *ListProperties

func SetupConfigProperties(filename string) {
	file, err := os.Open(filename)
	if err != nil {
		panic(err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(file)
	Properties = parse(file)
}

func init() {
	Properties = &ListProperties{
		ElementSize:    4,
		MaxSize:        0,
		OverflowPolicy: "reject",
		FileFormat:     "binary",
		DataFilename:   "list.dat",
		LogDir:         "logs",
		LogName:        "golist",
	}
}

func parse(reader io.Reader) *ListProperties {
	res := &ListProperties{}
	m := make(map[string]string)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > 0 && line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 {
			key := line[0:pivot]
			val := strings.Trim(line[pivot+1:], " ")
			m[strings.ToLower(key)] = val
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Fatal(err)
	}
	fillProperties(res, m)
	return res
}

func fillProperties(p *ListProperties, m map[string]string) {
	fields := reflect.TypeOf(p).Elem()
	values := reflect.ValueOf(p).Elem()
	n := fields.NumField()
	for i := 0; i < n; i++ {
		field := fields.Field(i)
		fieldVal := values.Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			key = field.Name
		}
		val, ok := m[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(val)
		case reflect.Int:
			intV, err := strconv.ParseInt(val, 10, 64)
			if err == nil {
				fieldVal.SetInt(intV)
			}
		case reflect.Bool:
			boolV := "yes" == val
			fieldVal.SetBool(boolV)
		case reflect.Slice:
			if field.Type.Elem().Kind() == reflect.String {
				sliceV := strings.Split(val, ",")
				fieldVal.Set(reflect.ValueOf(sliceV))
			}
		}
	}
}

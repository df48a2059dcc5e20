package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Settings stores the configuration of the file sink.
type Settings struct {
	Path       string
	Name       string
	Ext        string
	TimeFormat string
}

type logLevel int

const (
	debugLevel logLevel = iota
	infoLevel
	warnLevel
	errorLevel
	fatalLevel
)

var levelFlags = []string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

const flags = log.LstdFlags

var (
	mu      sync.Mutex
	logger  = log.New(os.Stdout, "", flags)
	logFile *os.File
)

// Setup attaches a file sink in addition to stdout. Harmless to skip:
// without it everything goes to stdout only.
func Setup(settings *Settings) {
	if err := os.MkdirAll(settings.Path, 0755); err != nil {
		log.Fatalf("logger: mkdir %s: %v", settings.Path, err)
	}
	filename := fmt.Sprintf("%s-%s.%s",
		settings.Name, time.Now().Format(settings.TimeFormat), settings.Ext)
	f, err := os.OpenFile(filepath.Join(settings.Path, filename),
		os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		log.Fatalf("logger: open log file: %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	logFile = f
}

func output(level logLevel, msg string) {
	var caller string
	if _, file, line, ok := runtime.Caller(2); ok {
		caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	formatted := fmt.Sprintf("[%s][%s] %s", levelFlags[level], caller, msg)
	mu.Lock()
	defer mu.Unlock()
	logger.Output(0, formatted)
	if logFile != nil {
		_, _ = logFile.WriteString(time.Now().Format("2006/01/02 15:04:05 ") + formatted + "\n")
	}
	if level == fatalLevel {
		os.Exit(1)
	}
}

func Debug(v ...any) {
	output(debugLevel, fmt.Sprint(v...))
}

func Debugf(format string, v ...any) {
	output(debugLevel, fmt.Sprintf(format, v...))
}

func Info(v ...any) {
	output(infoLevel, fmt.Sprint(v...))
}

func Infof(format string, v ...any) {
	output(infoLevel, fmt.Sprintf(format, v...))
}

func Warn(v ...any) {
	output(warnLevel, fmt.Sprint(v...))
}

func Warnf(format string, v ...any) {
	output(warnLevel, fmt.Sprintf(format, v...))
}

func Error(v ...any) {
	output(errorLevel, fmt.Sprint(v...))
}

func Errorf(format string, v ...any) {
	output(errorLevel, fmt.Sprintf(format, v...))
}

func Fatal(v ...any) {
	output(fatalLevel, fmt.Sprint(v...))
}

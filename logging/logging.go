package logging

import (
	"fmt"
	"sync"
)

// Level orders log records by severity. The numeric values match the
// library's external ABI so a foreign caller can filter without decoding
// a string.
type Level int

const (
	Debug    Level = 10
	Info     Level = 20
	Warning  Level = 30
	Error    Level = 40
	Critical Level = 50
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Critical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Record is one emitted log line. Target names the subsystem that
// produced it (e.g. "compile.restrictions", "osm.scanner").
type Record struct {
	Level   Level
	Target  string
	Message string
}

// Hook receives every record at or above the installed minimum level.
type Hook func(Record)

var (
	mu       sync.Mutex
	hook     Hook
	minLevel = Warning
)

// SetHook installs the process-global sink. Passing nil disables logging
// entirely. Install is not torn down automatically: the library does not
// require teardown ordering across a foreign-ABI boundary, so the
// previous hook (if any) is simply replaced and dropped.
func SetHook(h Hook) {
	mu.Lock()
	defer mu.Unlock()
	hook = h
}

// SetMinLevel sets the filter; records below it are dropped before the
// hook is ever invoked.
func SetMinLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = l
}

// Log emits a record through the installed hook, synchronously, if its
// level meets the current filter. A nil hook makes this a no-op.
func Log(level Level, target, message string) {
	mu.Lock()
	h := hook
	min := minLevel
	mu.Unlock()

	if h == nil || level < min {
		return
	}
	h(Record{Level: level, Target: target, Message: message})
}

// Debugf, Infof, Warnf, Errorf are thin convenience wrappers around Log
// that format their message with fmt-style verbs.
func Debugf(target, format string, args ...any) { logf(Debug, target, format, args...) }
func Infof(target, format string, args ...any)  { logf(Info, target, format, args...) }
func Warnf(target, format string, args ...any)  { logf(Warning, target, format, args...) }
func Errorf(target, format string, args ...any) { logf(Error, target, format, args...) }

func logf(level Level, target, format string, args ...any) {
	Log(level, target, fmt.Sprintf(format, args...))
}

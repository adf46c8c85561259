// Package logging provides the leveled console and file logger used by ollamatool.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level identifies the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	mu      sync.Mutex
	logFile *lumberjack.Logger
	debug   bool

	console    io.Writer   = os.Stdout
	logger     *log.Logger = log.New(os.Stdout, "", log.LstdFlags)
	fileLogger *log.Logger

	levelTags = map[Level]*color.Color{
		LevelDebug: color.New(color.FgCyan),
		LevelInfo:  color.New(color.FgGreen),
		LevelWarn:  color.New(color.FgYellow),
		LevelError: color.New(color.FgRed, color.Bold),
	}
)

// String returns the upper-case tag printed in front of each line.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Init routes log output to the console and, when logPath is set, to a
// rotating log file. The file never receives color escapes.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
		fileLogger = nil
	}

	color.NoColor = !isTerminal(console)
	logger.SetOutput(console)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		logFile = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
		fileLogger = log.New(logFile, "", log.LstdFlags)
	}
	return nil
}

// Close flushes and detaches the log file, falling back to the console only.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	fileLogger = nil
	return err
}

// SetOutput replaces the console destination. Intended for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	console = w
	color.NoColor = !isTerminal(w)
	logger.SetOutput(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SetFlags changes the std log prefix flags (0 drops timestamps).
func SetFlags(flags int) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetFlags(flags)
	if fileLogger != nil {
		fileLogger.SetFlags(flags)
	}
}

// SetDebug toggles debug level output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = enabled
}

// DebugEnabled reports whether debug lines are written.
func DebugEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return debug
}

func Debug(format string, args ...any) { logAt(LevelDebug, format, args...) }
func Info(format string, args ...any)  { logAt(LevelInfo, format, args...) }
func Warn(format string, args ...any)  { logAt(LevelWarn, format, args...) }
func Error(format string, args ...any) { logAt(LevelError, format, args...) }

// Dump pretty-prints v at debug level.
func Dump(label string, v any) {
	if !DebugEnabled() {
		return
	}
	printer := pp.New()
	printer.SetColoringEnabled(!color.NoColor)
	logAt(LevelDebug, "%s: %s", label, printer.Sprint(v))
}

func logAt(level Level, format string, args ...any) {
	if level == LevelDebug && !DebugEnabled() {
		return
	}
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")

	mu.Lock()
	defer mu.Unlock()
	logger.Println(buildMessage(level, msg, !color.NoColor))
	if fileLogger != nil {
		fileLogger.Println(buildMessage(level, stripANSI(msg), false))
	}
}

func buildMessage(level Level, msg string, colored bool) string {
	tag := fmt.Sprintf("%-5s", level.String())
	if c, ok := levelTags[level]; ok && colored {
		tag = c.Sprint(tag)
	}
	return tag + " " + msg
}

// stripANSI removes \x1b[...<letter> sequences, e.g. from a colored dump.
func stripANSI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inEscape := false
	for i := 0; i < len(s); i++ {
		if !inEscape {
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
				inEscape = true
				i++
				continue
			}
			b.WriteByte(s[i])
			continue
		}
		if (s[i] >= 'A' && s[i] <= 'Z') || (s[i] >= 'a' && s[i] <= 'z') {
			inEscape = false
		}
	}
	return b.String()
}

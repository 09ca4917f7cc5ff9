package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Level orders log severities
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelSilent
)

var (
	mu     sync.RWMutex
	level  = LevelWarn
	logger = log.New(os.Stderr, "", log.Ltime)

	debugTag = color.New(color.FgBlue).SprintFunc()
	infoTag  = color.New(color.FgGreen).SprintFunc()
	warnTag  = color.New(color.FgYellow).SprintFunc()
)

// SetLevel sets the minimum level that is written
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetOutput redirects log output
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

func enabled(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l >= level
}

func write(l Level, tag func(a ...interface{}) string, name, category string, content []interface{}) {
	if !enabled(l) {
		return
	}
	message := fmt.Sprint(content...)
	logger.Printf("%s: %s", tag(fmt.Sprintf("[%s][%s]", name, category)), message)
}

func Debug(category string, content ...interface{}) {
	write(LevelDebug, debugTag, "DEBUG", category, content)
}

func Info(category string, content ...interface{}) {
	write(LevelInfo, infoTag, "INFO", category, content)
}

func Warn(category string, content ...interface{}) {
	write(LevelWarn, warnTag, "WARN", category, content)
}

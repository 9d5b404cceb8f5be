package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

const projectName = "ledsend"

var (
	globalLogLevel = logrus.InfoLevel
	levelLock      sync.Mutex
)

// GetProjectLogger returns the logger used throughout ledsend.
func GetProjectLogger() *logrus.Entry {
	return GetLogger(projectName)
}

// GetLogger creates a logger tagged with the given name.
func GetLogger(name string) *logrus.Entry {
	levelLock.Lock()
	level := globalLogLevel
	levelLock.Unlock()

	l := logrus.New()
	l.Out = os.Stderr
	l.Level = level
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	return l.WithField("name", name)
}

// SetGlobalLogLevel changes the level of loggers created afterwards.
func SetGlobalLogLevel(level logrus.Level) {
	levelLock.Lock()
	defer levelLock.Unlock()
	globalLogLevel = level
}

package util

import (
	"sync"
)

var (
	globalLogger LoggerInterface
	globalMu     sync.RWMutex
)

// InitLogger installs the global logger. Calling it again replaces (and
// closes) the previous one.
func InitLogger(logLevel, logFile string, debugToConsole bool) error {
	logger, err := NewLogger(logLevel, logFile, debugToConsole)
	if err != nil {
		return err
	}
	SetLogger(logger)
	return nil
}

// SetLogger swaps the global logger; nil disables global logging.
func SetLogger(logger LoggerInterface) {
	globalMu.Lock()
	prev := globalLogger
	globalLogger = logger
	globalMu.Unlock()

	if prev != nil && prev != logger {
		_ = prev.Close()
	}
}

// CloseLogger flushes and detaches the global logger
func CloseLogger() {
	SetLogger(nil)
}

// Log returns the global logger, or a discarding one before InitLogger
func Log() LoggerInterface {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return discardLogger
	}
	return globalLogger
}

var discardLogger LoggerInterface = NewLoggerWithOutputs(LevelError + 1)

// LogInfo convenience functions for logging
func LogInfo(msg string, fields ...Field) {
	Log().Info(msg, fields...)
}

func LogInfof(format string, args ...interface{}) {
	Log().Infof(format, args...)
}

func LogDebug(msg string, fields ...Field) {
	Log().Debug(msg, fields...)
}

func LogDebugf(format string, args ...interface{}) {
	Log().Debugf(format, args...)
}

func LogWarn(msg string, fields ...Field) {
	Log().Warn(msg, fields...)
}

func LogWarnf(format string, args ...interface{}) {
	Log().Warnf(format, args...)
}

func LogError(msg string, fields ...Field) {
	Log().Error(msg, fields...)
}

func LogErrorf(format string, args ...interface{}) {
	Log().Errorf(format, args...)
}

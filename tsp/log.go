// Package tsp - optional debug logging.

package tsp

import "github.com/charmbracelet/log"

// logDebug logs at debug level when l is non-nil.
func logDebug(l *log.Logger, msg string, keyvals ...any) {
	if l == nil {
		return
	}
	l.Debug(msg, keyvals...)
}

// Package logging adapts hclog to the castore.Logger interface.
package logging

import (
	"io"
	"sort"

	"github.com/hashicorp/go-hclog"
)

// Logger forwards castore log calls to an hclog.Logger.
type Logger struct {
	hc hclog.Logger
}

// New wraps an existing hclog logger.
func New(hc hclog.Logger) *Logger {
	if hc == nil {
		hc = hclog.NewNullLogger()
	}

	return &Logger{hc: hc}
}

// NewDefault builds an hclog logger named name writing to w at level
// ("trace", "debug", "info", "warn", "error").
func NewDefault(name, level string, w io.Writer) *Logger {
	return New(hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  hclog.LevelFromString(level),
		Output: w,
	}))
}

// HCLog returns the wrapped logger.
func (l *Logger) HCLog() hclog.Logger {
	return l.hc
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.hc.Debug(msg, flatten(fields)...)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.hc.Info(msg, flatten(fields)...)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.hc.Warn(msg, flatten(fields)...)
}

func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.hc.Error(msg, flatten(fields)...)
}

// flatten turns fields into hclog key/value pairs, sorted by key.
func flatten(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	args := make([]interface{}, 0, len(keys)*2)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}

	return args
}

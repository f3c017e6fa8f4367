package handler

import (
	"sync"

	"paper-analyzer/internal/domain"
)

// Mock logger used by handler package tests.
type MockHandlerLogger struct{}

func NewMockHandlerLogger() domain.Logger {
	return &MockHandlerLogger{}
}

func (l *MockHandlerLogger) Info(msg string, fields ...interface{})             {}
func (l *MockHandlerLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockHandlerLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockHandlerLogger) Warn(msg string, fields ...interface{})             {}

// RecordingHandlerLogger keeps the fields of every Info and Error call.
type RecordingHandlerLogger struct {
	mu     sync.Mutex
	fields [][]interface{}
}

func (l *RecordingHandlerLogger) Info(msg string, fields ...interface{}) { l.record(fields) }
func (l *RecordingHandlerLogger) Error(msg string, err error, fields ...interface{}) {
	l.record(fields)
}
func (l *RecordingHandlerLogger) Debug(msg string, fields ...interface{}) {}
func (l *RecordingHandlerLogger) Warn(msg string, fields ...interface{})  {}

func (l *RecordingHandlerLogger) record(fields []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fields = append(l.fields, fields)
}

// Values returns every value logged under key, in call order.
func (l *RecordingHandlerLogger) Values(key string) []interface{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []interface{}
	for _, fields := range l.fields {
		for i := 0; i+1 < len(fields); i += 2 {
			if fields[i] == key {
				out = append(out, fields[i+1])
			}
		}
	}
	return out
}

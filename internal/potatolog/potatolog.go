// Package potatolog provides a simple in-memory sink for zerolog JSON output.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// DefaultCapacity is the number of entries a MemoryLogReaderWriter keeps by
// default.
const DefaultCapacity = 1000

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = NewMemoryLogReaderWriter(DefaultCapacity)

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// Once full, the oldest entries are dropped.
type MemoryLogReaderWriter struct {
	mtx      sync.Mutex
	capacity int
	log      []LogEntry
}

// NewMemoryLogReaderWriter returns a pointer to a new MemoryLogReaderWriter
// keeping at most capacity entries (unbounded for capacity <= 0).
func NewMemoryLogReaderWriter(capacity int) *MemoryLogReaderWriter {
	return &MemoryLogReaderWriter{
		capacity: capacity,
		log:      []LogEntry{},
	}
}

// Write appends a log entry to the log.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	if w.capacity > 0 && len(w.log) > w.capacity {
		w.log = w.log[len(w.log)-w.capacity:]
	}
	return len(p), nil
}

// Get returns a copy of the log.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := make([]LogEntry, len(w.log))
	copy(result, w.log)
	return result
}

// AtLevel returns the entries logged at the given level.
func (w *MemoryLogReaderWriter) AtLevel(level zerolog.Level) []LogEntry {
	result := []LogEntry{}
	for _, entry := range w.Get() {
		if entry[zerolog.LevelFieldName] == level.String() {
			result = append(result, entry)
		}
	}
	return result
}

// Reset drops all entries.
func (w *MemoryLogReaderWriter) Reset() {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = []LogEntry{}
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
}

// Package potatolog provides an in-memory sink for JSON log output, so that
// logs can be shown within the UI.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// DefaultCapacity is the number of entries GlobalMemoryLogReaderWriter keeps.
const DefaultCapacity = 1000

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = NewMemoryLogReaderWriter(DefaultCapacity)

// MemoryLogReaderWriter is a simple in-memory log reader and writer, keeping
// only the most recent entries up to its capacity.
type MemoryLogReaderWriter struct {
	mtx      sync.Mutex
	log      []LogEntry
	capacity int
	dropped  int
}

// NewMemoryLogReaderWriter returns a MemoryLogReaderWriter keeping at most
// capacity entries; a capacity below 1 means no limit.
func NewMemoryLogReaderWriter(capacity int) *MemoryLogReaderWriter {
	return &MemoryLogReaderWriter{capacity: capacity}
}

// Write appends a log entry to the log. Each write must hold exactly one JSON
// object, as written by zerolog.
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
		excess := len(w.log) - w.capacity
		w.log = append(w.log[:0:0], w.log[excess:]...)
		w.dropped += excess
	}
	return len(p), nil
}

// Get returns a copy of the log, oldest entry first.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := make([]LogEntry, len(w.log))
	copy(result, w.log)
	return result
}

// Dropped returns the number of entries dropped for exceeding the capacity.
func (w *MemoryLogReaderWriter) Dropped() int {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return w.dropped
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
}

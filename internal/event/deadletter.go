package event

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/osse101/BabyBank_Go/internal/logger"
)

// DeadLetterSchemaVersion tags each line of the dead-letter log
const DeadLetterSchemaVersion = "1.0"

// DeadLetterEntry is one JSON line in the dead-letter log
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends undeliverable events to a JSONL file
type DeadLetterWriter struct {
	mu  sync.Mutex
	out *os.File
	enc *json.Encoder
}

// NewDeadLetterWriter opens path for appending, creating it if needed
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("open dead-letter log %s: %w", path, err)
	}
	return &DeadLetterWriter{out: f, enc: json.NewEncoder(f)}, nil
}

func (w *DeadLetterWriter) Write(evt Event, attempts int, cause error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now().UTC(),
		Event:         evt,
		Attempts:      attempts,
	}
	if cause != nil {
		entry.LastError = cause.Error()
	}

	logger.FromContext(context.Background()).Warn(LogMsgEventDeadLettered,
		"event_type", evt.Type, "attempts", attempts, "error", entry.LastError)

	w.mu.Lock()
	defer w.mu.Unlock()
	// Encoder terminates each value with a newline
	return w.enc.Encode(entry)
}

func (w *DeadLetterWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Close()
}

// ReadDeadLetters parses a dead-letter log. Blank lines are skipped; a malformed
// line aborts with its line number.
func ReadDeadLetters(r io.Reader) ([]DeadLetterEntry, error) {
	var entries []DeadLetterEntry
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Bytes()
		if len(raw) == 0 {
			continue
		}
		var entry DeadLetterEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return entries, fmt.Errorf("dead-letter line %d: %w", line, err)
		}
		entries = append(entries, entry)
	}
	return entries, sc.Err()
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/osse101/BabyBank_Go/internal/config"
	"github.com/osse101/BabyBank_Go/internal/event"
)

// DeadLettersCommand summarises the dead-letter log: how many events of each type
// failed for good, and the most recent error for each
type DeadLettersCommand struct{}

func (c *DeadLettersCommand) Name() string { return "dead-letters" }
func (c *DeadLettersCommand) Description() string {
	return "Summarise undeliverable events ([path], defaults to DEAD_LETTER_PATH)"
}

func (c *DeadLettersCommand) Run(_ context.Context, args []string) error {
	path := argAt(args, 0)
	if path == "" {
		path = firstNonEmpty(os.Getenv("DEAD_LETTER_PATH"), config.DefaultDeadLetterPath)
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		PrintSuccess("No dead-letter log at %s", path)
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	entries, err := event.ReadDeadLetters(f)
	if err != nil {
		return err
	}
	PrintHeader(fmt.Sprintf("%s: %d event(s)", path, len(entries)))
	if len(entries) == 0 {
		return nil
	}

	type summary struct {
		count     int
		lastError string
	}
	byType := map[event.Type]*summary{}
	for _, e := range entries {
		s, ok := byType[e.Event.Type]
		if !ok {
			s = &summary{}
			byType[e.Event.Type] = s
		}
		s.count++
		if e.LastError != "" {
			s.lastError = e.LastError
		}
	}

	types := make([]event.Type, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	slices.SortFunc(types, func(a, b event.Type) int { return strings.Compare(string(a), string(b)) })
	for _, t := range types {
		s := byType[t]
		PrintWarning("%-28s %5d  last error: %s", t, s.count, firstNonEmpty(s.lastError, "-"))
	}
	return nil
}

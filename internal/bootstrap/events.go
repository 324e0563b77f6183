package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/BabyBank_Go/internal/config"
	"github.com/osse101/BabyBank_Go/internal/event"
)

// InitializeEventSystem returns the in-process bus plus the publisher services should
// use. Publishing through the publisher retries failed deliveries with backoff and
// dead-letters what still fails. Zero config values fall back to the config defaults.
func InitializeEventSystem(cfg *config.Config) (*event.MemoryBus, *event.ResilientPublisher, error) {
	retries := orDefault(cfg.EventMaxRetries, config.DefaultEventMaxRetries)
	delay := orDefault(cfg.EventRetryDelay, config.DefaultEventRetryDelay)
	path := orDefault(cfg.DeadLetterPath, config.DefaultDeadLetterPath)

	if err := os.MkdirAll(filepath.Dir(path), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	bus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(bus, retries, delay, path)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized, "max_retries", retries, "retry_delay", delay, "dead_letter_path", path)
	return bus, publisher, nil
}

func orDefault[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}

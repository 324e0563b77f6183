package main

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	defaultAPIURL      = "http://localhost:8080"
	dbWaitAttempts     = 30
	dbWaitInterval     = 2 * time.Second
	healthCheckTimeout = 10 * time.Second
	slowResponse       = time.Second
)

// errUsage means the arguments did not name a command; help has been printed
var errUsage = errors.New("usage")

// Command is one devtool subcommand
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, args []string) error
}

// Registry holds the subcommands in registration order
type Registry struct {
	commands []Command
}

func NewRegistry(cmds ...Command) *Registry {
	return &Registry{commands: cmds}
}

func (r *Registry) Get(name string) (Command, bool) {
	i := slices.IndexFunc(r.commands, func(c Command) bool { return c.Name() == name })
	if i < 0 {
		return nil, false
	}
	return r.commands[i], true
}

// List returns the commands sorted by name
func (r *Registry) List() []Command {
	sorted := slices.Clone(r.commands)
	slices.SortFunc(sorted, func(a, b Command) int { return strings.Compare(a.Name(), b.Name()) })
	return sorted
}

func (r *Registry) PrintHelp() {
	fmt.Fprintln(console, "Usage: devtool <command> [args...]")
	fmt.Fprintln(console)
	fmt.Fprintln(console, "Commands:")

	width := 0
	for _, c := range r.commands {
		width = max(width, len(c.Name()))
	}
	for _, c := range r.List() {
		fmt.Fprintf(console, "  %-*s  %s\n", width, c.Name(), c.Description())
	}
}

// Dispatch runs the command named by args[0] with the remaining args
func (r *Registry) Dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		r.PrintHelp()
		return errUsage
	}
	cmd, ok := r.Get(args[0])
	if !ok {
		PrintError("Unknown command: %s", args[0])
		r.PrintHelp()
		return errUsage
	}
	if err := cmd.Run(ctx, args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	return nil
}

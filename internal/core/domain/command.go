package domain

import (
	"strings"
	"time"
)

// Command describes an external process invocation.
type Command struct {
	// Name is the executable to run.
	Name string

	// Args are passed to the executable unchanged.
	Args []string

	// Env overrides variables of the inherited environment for this process only.
	Env map[string]string

	// Timeout bounds the process runtime. Zero means no bound beyond the caller's context.
	Timeout time.Duration
}

// String renders the command line for diagnostics.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

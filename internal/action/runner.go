// Package action executes the commands bound to recognized gestures.
package action

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"sync"
	"time"
)

// Runner executes binding commands with a timeout and a per-label
// cooldown so a held gesture does not retrigger its action every window.
type Runner struct {
	timeout  time.Duration
	cooldown time.Duration
	mu       sync.Mutex
	lastRun  map[string]time.Time
}

// NewRunner creates a Runner with the given execution timeout and
// per-label cooldown.
func NewRunner(timeout, cooldown time.Duration) *Runner {
	return &Runner{
		timeout:  timeout,
		cooldown: cooldown,
		lastRun:  make(map[string]time.Time),
	}
}

// Run executes the command bound to a label through the shell. A label
// still inside its cooldown is skipped silently (nil error, ran=false).
// The command's stdout is returned for logging.
func (r *Runner) Run(label, command string) (ran bool, output string, err error) {
	r.mu.Lock()
	if last, ok := r.lastRun[label]; ok && time.Since(last) < r.cooldown {
		r.mu.Unlock()
		return false, "", nil
	}
	r.lastRun[label] = time.Now()
	r.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return true, stdout.String(), fmt.Errorf("action timeout after %s", r.timeout)
	}

	if err != nil {
		if stderr.Len() > 0 {
			return true, stdout.String(), fmt.Errorf("action failed: %w, stderr: %s", err, stderr.String())
		}
		return true, stdout.String(), fmt.Errorf("action failed: %w", err)
	}

	return true, stdout.String(), nil
}

// ResetCooldowns clears the cooldown tracking, typically between
// sessions.
func (r *Runner) ResetCooldowns() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastRun = make(map[string]time.Time)
}

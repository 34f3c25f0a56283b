package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/gorg/internal/log"
)

// RunContext executes a command in dir and waits for it. Stderr is captured
// and becomes the error message when the command fails. An empty dir runs
// the command in the current directory.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stderr bytes.Buffer
	c.Stderr = &stderr

	err := c.Run()
	done(time.Since(start))
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		return err
	}
	return nil
}

// OutputContext executes a command in dir and returns its stdout. Stderr is
// captured and becomes the error message when the command fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stderr bytes.Buffer
	c.Stderr = &stderr

	out, err := c.Output()
	done(time.Since(start))
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s", msg)
		}
		return nil, err
	}
	return out, nil
}

// RunInteractive executes a command in dir with the process stdio attached,
// for commands whose output the user should see live (clone progress, the
// run subcommand).
func RunInteractive(ctx context.Context, dir, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := log.FromContext(ctx).Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	err := c.Run()
	done(time.Since(start))
	return err
}

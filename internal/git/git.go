package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"

	"github.com/raphi011/gorg/internal/cmd"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com)")

// Runner executes repository operations through the configured git binary.
type Runner struct {
	bin string
}

// New creates a Runner for the given git executable. An empty bin falls
// back to "git" from PATH.
func New(bin string) *Runner {
	if bin == "" {
		bin = "git"
	}
	return &Runner{bin: bin}
}

// Check verifies that the git binary is available.
func (r *Runner) Check() error {
	if _, err := exec.LookPath(r.bin); err != nil {
		if r.bin != "git" {
			return fmt.Errorf("%w (configured git_command: %q)", ErrGitNotFound, r.bin)
		}
		return ErrGitNotFound
	}
	return nil
}

// Clone clones url into dest, with clone progress visible on the terminal.
func (r *Runner) Clone(ctx context.Context, url, dest string) error {
	if err := cmd.RunInteractive(ctx, "", r.bin, "clone", "--", url, dest); err != nil {
		return fmt.Errorf("clone %s: %w", url, err)
	}
	return nil
}

// Init initializes a new repository in dir. The directory must exist.
func (r *Runner) Init(ctx context.Context, dir string) error {
	if err := cmd.RunContext(ctx, dir, r.bin, "init"); err != nil {
		return fmt.Errorf("init %s: %w", dir, err)
	}
	return nil
}

// Remotes lists the remote names configured in dir.
func (r *Runner) Remotes(ctx context.Context, dir string) ([]string, error) {
	out, err := cmd.OutputContext(ctx, dir, r.bin, "remote")
	if err != nil {
		return nil, fmt.Errorf("list remotes in %s: %w", dir, err)
	}
	var remotes []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			remotes = append(remotes, line)
		}
	}
	return remotes, nil
}

// RemoteAdd adds a remote to the repository in dir.
func (r *Runner) RemoteAdd(ctx context.Context, dir, name, url string) error {
	if err := cmd.RunContext(ctx, dir, r.bin, "remote", "add", name, url); err != nil {
		return fmt.Errorf("add remote %s in %s: %w", name, dir, err)
	}
	return nil
}

// RemoteSetURL points an existing remote in dir at url.
func (r *Runner) RemoteSetURL(ctx context.Context, dir, name, url string) error {
	if err := cmd.RunContext(ctx, dir, r.bin, "remote", "set-url", name, url); err != nil {
		return fmt.Errorf("set remote %s in %s: %w", name, dir, err)
	}
	return nil
}

// EnsureRemote points name at url in dir, adding the remote when missing
// and updating its URL when present.
func (r *Runner) EnsureRemote(ctx context.Context, dir, name, url string) error {
	remotes, err := r.Remotes(ctx, dir)
	if err != nil {
		return err
	}
	if slices.Contains(remotes, name) {
		return r.RemoteSetURL(ctx, dir, name, url)
	}
	return r.RemoteAdd(ctx, dir, name, url)
}

package main

import (
	"testing"

	"github.com/raphi011/gorg/internal/index"
)

func TestProjectLine(t *testing.T) {
	t.Parallel()

	entry := index.Entry{
		Name: "github.com/alice/alpha",
		Path: "/home/alice/Projects/github.com/alice/alpha",
	}

	if got := projectLine(entry, false); got != entry.Name {
		t.Errorf("projectLine(false) = %q, want %q", got, entry.Name)
	}
	if got := projectLine(entry, true); got != entry.Path {
		t.Errorf("projectLine(true) = %q, want %q", got, entry.Path)
	}
}

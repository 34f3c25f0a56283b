// Package locate resolves query strings to indexed projects.
package locate

import (
	"errors"
	"fmt"

	"github.com/raphi011/gorg/internal/index"
	"github.com/raphi011/gorg/internal/match"
)

// ErrNoMatch indicates that no indexed project matched.
var ErrNoMatch = errors.New("no matching project")

// One returns the entry with exactly the given name. Selection UIs hand
// back a name they got from the index, so anything missing here means the
// index changed underneath us.
func One(ix *index.Index, name string) (index.Entry, error) {
	e, err := ix.FindByName(name)
	if err != nil {
		return index.Entry{}, fmt.Errorf("%w: %s", ErrNoMatch, name)
	}
	return e, nil
}

// Many returns the entries of all projects matching query, best match
// first. An empty query returns every indexed entry in index order.
func Many(ix *index.Index, query string, mode match.Mode) []index.Entry {
	results := match.Match(query, ix.Names(), mode)
	entries := make([]index.Entry, len(results))
	for i, res := range results {
		entries[i] = ix.Entries[res.Index]
	}
	return entries
}

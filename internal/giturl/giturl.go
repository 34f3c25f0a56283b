// Package giturl builds git remote URLs from command line arguments and
// derives project paths from remote URLs.
package giturl

import (
	"errors"
	"fmt"
	"strings"
)

// defaultUser is prepended to ssh and rsync hosts when no user is given.
const defaultUser = "git"

func knownScheme(s string) bool {
	switch s {
	case "ssh", "git", "rsync", "file", "http", "https":
		return true
	}
	return false
}

// hasSchemePrefix reports whether s already starts with a known scheme,
// like "https://host".
func hasSchemePrefix(s string) bool {
	scheme, _, ok := strings.Cut(s, ":")
	return ok && knownScheme(scheme)
}

// FromParts builds a remote URL from CLI arguments. A single argument is
// returned verbatim and assumed to already be a URL. With more arguments the
// first one selects the scheme: a bare scheme name ("ssh", "https", ...), a
// scheme-prefixed host ("https://host"), or a plain host which defaults to
// https. The remaining arguments are joined with "/" and the result gets a
// ".git" suffix when missing. Local file paths are not remotes and are
// rejected.
func FromParts(parts []string) (string, error) {
	switch len(parts) {
	case 0:
		return "", errors.New("not enough arguments to build a remote URL")
	case 1:
		return parts[0], nil
	}

	first := parts[0]
	if strings.HasPrefix(first, "/") || strings.HasPrefix(first, "~") {
		return "", errors.New("file URLs are not supported")
	}

	var b strings.Builder
	switch {
	case first == "file":
		return "", errors.New("file URLs are not supported")
	case knownScheme(first):
		b.WriteString(first)
		b.WriteString("://")
		host := parts[1]
		if (first == "ssh" || first == "rsync") && !strings.Contains(host, "@") {
			b.WriteString(defaultUser)
			b.WriteString("@")
		}
		b.WriteString(host)
		joinParts(&b, parts[2:])
	case hasSchemePrefix(first):
		b.WriteString(first)
		joinParts(&b, parts[1:])
	default:
		b.WriteString("https://")
		b.WriteString(first)
		joinParts(&b, parts[1:])
	}

	url := b.String()
	if !strings.HasSuffix(url, ".git") {
		url += ".git"
	}
	return url, nil
}

func joinParts(b *strings.Builder, parts []string) {
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		b.WriteString("/")
		b.WriteString(p)
	}
}

// PathParts derives the project path (host, owner, ..., repo) from a remote
// URL. Both scheme URLs ("ssh://git@host:port/owner/repo.git") and scp style
// addresses ("git@host:owner/repo.git") are supported. The user and port are
// dropped from the host, a leading "~" is dropped from every path segment and
// a trailing ".git" from the last one.
func PathParts(url string) ([]string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("empty URL cannot be converted to a path")
	}

	left, right, ok := strings.Cut(url, ":")
	if !ok {
		return nil, fmt.Errorf("unsupported URL: %s", url)
	}

	var host, pathPart string
	switch {
	case left == "file":
		return nil, fmt.Errorf("file URLs are not supported: %s", url)
	case knownScheme(left):
		rest, ok := strings.CutPrefix(right, "//")
		if !ok {
			return nil, fmt.Errorf("invalid URL: %s", url)
		}
		authority, repoPath, ok := strings.Cut(rest, "/")
		if !ok {
			return nil, fmt.Errorf("invalid URL: %s", url)
		}
		host = leftOf(rightOf(authority, "@"), ":")
		pathPart = repoPath
	default:
		// No scheme, so treat it as an scp style address.
		host = rightOf(left, "@")
		pathPart = right
	}

	parts := []string{host}
	segs := strings.Split(pathPart, "/")
	for i, seg := range segs {
		seg = strings.TrimSpace(seg)
		seg = strings.TrimPrefix(seg, "~")
		if i == len(segs)-1 {
			seg = strings.TrimSuffix(seg, ".git")
		}
		if seg != "" {
			parts = append(parts, seg)
		}
	}

	if len(parts) <= 1 {
		return nil, fmt.Errorf("not enough parts in URL to build a project path: %s", url)
	}
	return parts, nil
}

func leftOf(s, sep string) string {
	before, _, _ := strings.Cut(s, sep)
	return before
}

func rightOf(s, sep string) string {
	if _, after, ok := strings.Cut(s, sep); ok {
		return after
	}
	return s
}

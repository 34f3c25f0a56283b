package giturl

import (
	"slices"
	"testing"
)

func TestFromParts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		parts   []string
		want    string
		wantErr bool
	}{
		{
			name:  "single url passed through",
			parts: []string{"https://github.com/jpallari/gorg.git"},
			want:  "https://github.com/jpallari/gorg.git",
		},
		{
			name:  "no scheme defaults to https",
			parts: []string{"github.com", "jpallari", "gorg"},
			want:  "https://github.com/jpallari/gorg.git",
		},
		{
			name:  "trailing git suffix not doubled",
			parts: []string{"github.com", "jpallari", "gorg.git"},
			want:  "https://github.com/jpallari/gorg.git",
		},
		{
			name:  "ssh gets default user",
			parts: []string{"ssh", "github.com", "jpallari", "gorg"},
			want:  "ssh://git@github.com/jpallari/gorg.git",
		},
		{
			name:  "ssh keeps explicit user",
			parts: []string{"ssh", "user@github.com", "jpallari", "gorg"},
			want:  "ssh://user@github.com/jpallari/gorg.git",
		},
		{
			name:  "rsync gets default user",
			parts: []string{"rsync", "host.xyz", "repo"},
			want:  "rsync://git@host.xyz/repo.git",
		},
		{
			name:  "http host without user",
			parts: []string{"http", "github.com", "jpallari", "gorg"},
			want:  "http://github.com/jpallari/gorg.git",
		},
		{
			name:  "scheme prefixed host used as is",
			parts: []string{"https://github.com", "jpallari", "gorg"},
			want:  "https://github.com/jpallari/gorg.git",
		},
		{
			name:  "blank parts dropped",
			parts: []string{"github.com", "", "jpallari", " ", "gorg"},
			want:  "https://github.com/jpallari/gorg.git",
		},
		{
			name:    "no parts",
			parts:   nil,
			wantErr: true,
		},
		{
			name:    "file scheme rejected",
			parts:   []string{"file", "path/to/repo"},
			wantErr: true,
		},
		{
			name:    "absolute path rejected",
			parts:   []string{"/", "path/to/repo"},
			wantErr: true,
		},
		{
			name:    "home path rejected",
			parts:   []string{"~", "path/to/repo"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := FromParts(tt.parts)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FromParts(%v) = %q, want error", tt.parts, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromParts(%v): unexpected error: %v", tt.parts, err)
			}
			if got != tt.want {
				t.Errorf("FromParts(%v) = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}

func TestPathParts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		want    []string
		wantErr bool
	}{
		{
			name: "https",
			url:  "https://github.com/jpallari/gorg.git",
			want: []string{"github.com", "jpallari", "gorg"},
		},
		{
			name: "ssh with user",
			url:  "ssh://git@github.com/jpallari/gorg.git",
			want: []string{"github.com", "jpallari", "gorg"},
		},
		{
			name: "ssh with port",
			url:  "ssh://git@github.com:2022/jpallari/gorg.git",
			want: []string{"github.com", "jpallari", "gorg"},
		},
		{
			name: "scp style",
			url:  "git@github.com:jpallari/gorg.git",
			want: []string{"github.com", "jpallari", "gorg"},
		},
		{
			name: "scp style with home dir",
			url:  "git@host.xyz:~user/repo.git",
			want: []string{"host.xyz", "user", "repo"},
		},
		{
			name: "ssh with home in path",
			url:  "ssh://git@host.xyz:~/user/repo.git",
			want: []string{"host.xyz", "user", "repo"},
		},
		{
			name: "no git suffix",
			url:  "https://gitlab.com/acme/widget",
			want: []string{"gitlab.com", "acme", "widget"},
		},
		{
			name:    "empty",
			url:     "",
			wantErr: true,
		},
		{
			name:    "missing path",
			url:     "https://",
			wantErr: true,
		},
		{
			name:    "file scheme",
			url:     "file:///path/to/repo",
			wantErr: true,
		},
		{
			name:    "absolute path",
			url:     "/path/to/repo",
			wantErr: true,
		},
		{
			name:    "home path",
			url:     "~/path/to/repo",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := PathParts(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("PathParts(%q) = %v, want error", tt.url, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("PathParts(%q): unexpected error: %v", tt.url, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("PathParts(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

package doctor

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryEnvironment represents problems with the host setup.
	CategoryEnvironment IssueCategory = "environment"
	// CategoryIndex represents problems with the persisted index.
	CategoryIndex IssueCategory = "index"
	// CategoryDrift represents repositories on disk the index doesn't know.
	CategoryDrift IssueCategory = "drift"
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Name        string        // project name, path or binary the issue is about
	Description string        // human-readable description
	Category    IssueCategory // issue category
}

// Stats tracks counts by category.
type Stats struct {
	EntriesValid  int // index entries whose path is still a repository
	EntriesStale  int // index entries whose path no longer exists
	EntriesBroken int // index entries whose path is no longer a repository
	Unindexed     int // repositories on disk missing from the index
}

package runner

// JobStatus represents the outcome of a job execution.
type JobStatus string

const (
	StatusWritten   JobStatus = "written"
	StatusUnchanged JobStatus = "unchanged"
	StatusCurrent   JobStatus = "current"
	StatusStale     JobStatus = "stale"
	StatusFail      JobStatus = "fail"
)

// JobResult represents the result of a single job execution.
type JobResult struct {
	Job     string    `json:"job"`
	Status  JobStatus `json:"status"`
	Path    string    `json:"path,omitempty"`
	Members int       `json:"members"`
	Note    string    `json:"note,omitempty"`
}

// Summary represents the outcome of a whole run.
type Summary struct {
	Status string      `json:"status"` // "pass" or "fail"
	Jobs   []JobResult `json:"jobs"`   // In execution order
	Failed []string    `json:"failed"` // IDs of failed or stale jobs
}

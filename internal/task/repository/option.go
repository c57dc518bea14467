package repository

// ListTasksOptions holds the parameters for listing tasks.
type ListTasksOptions struct {
	TagID  string // filter by a specific tag ID
	Done   *bool  // filter by completion state
	Limit  int    // max number of results (default 50)
	Offset int    // pagination offset
}

package domain

// Task represents a task record in the domain model.
// Identity is ID; uniqueness is assumed from the remote source.
type Task struct {
	ID        int64
	Title     string
	UserID    int64
	Completed bool
}

// IsValid checks if the task carries a usable identifier.
func (t Task) IsValid() bool {
	return t.ID > 0
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// Status returns the human-readable completion status.
func (t Task) Status() string {
	if t.Completed {
		return "Completed"
	}
	return "In Progress"
}

// WithCompleted returns a copy of the task with the completion flag replaced.
func (t Task) WithCompleted(completed bool) Task {
	t.Completed = completed
	return t
}

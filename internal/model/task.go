package model

// TaskStatus tracks a planning task through its life.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// IsValid reports whether the status is a known task status.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	default:
		return false
	}
}

// Task lives inside a wedding's task board.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Deadline    string     `json:"deadline,omitempty"`
	Assignee    string     `json:"assignee,omitempty"`
	Status      TaskStatus `json:"status"`
	Budget      uint64     `json:"budget"`
}

// AddTaskRequest is the payload for POST /v1/weddings/{weddingId}/tasks.
type AddTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
	Budget      uint64 `json:"budget"`
}

// UpdateTaskStatusRequest is the payload for
// PATCH /v1/weddings/{weddingId}/tasks/{taskId}.
type UpdateTaskStatusRequest struct {
	Status TaskStatus `json:"status"`
}

// Package service defines the backend-agnostic interface for task API
// operations.
package service

// Role values for User.Role.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Task status values.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Task priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// User is an account identity.
type User struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"` // "admin" or "member"
	CreatedAt string `json:"createdAt,omitempty"`
}

// Task represents a single task item.
type Task struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"dueDate,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Assignee    *User    `json:"assignee,omitempty"`
	Owner       User     `json:"owner"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// TaskPage is one page of a filtered task listing.
type TaskPage struct {
	Items []Task `json:"items"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Total int    `json:"total"`
	Pages int    `json:"pages"`
}

// Activity is one entry in a task's change history.
type Activity struct {
	ID        string `json:"_id"`
	Action    string `json:"action"`
	Field     string `json:"field,omitempty"`
	OldValue  string `json:"oldValue,omitempty"`
	NewValue  string `json:"newValue,omitempty"`
	User      User   `json:"user"`
	CreatedAt string `json:"createdAt"`
}

// Session is the result of a successful login or registration.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Stats is the dashboard overview.
type Stats struct {
	ByStatus   map[string]int `json:"byStatus"`
	ByPriority map[string]int `json:"byPriority"`
	Overdue    int            `json:"overdue"`
}

// CreateTask is the payload for creating a task.
type CreateTask struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Assignee    string   `json:"assignee,omitempty"`
}

// UpdateTask is the payload for a partial task update. Empty fields are
// left unchanged by the backend.
type UpdateTask struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Assignee    string   `json:"assignee,omitempty"`
}

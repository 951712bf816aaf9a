// Package service defines the backend-agnostic interface for task API
// operations.
package service

import (
	"context"
	"errors"

	"taskdeck/internal/filter"
)

// ErrUnauthenticated is reported when the backend rejects the stored
// credential (expired or revoked token). The command layer responds by
// clearing the stored session.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrNotFound is reported when a referenced resource does not exist.
var ErrNotFound = errors.New("not found")

// Service defines the interface for task backend operations.
// All HTTP calls go through this interface. Commands never build requests
// directly.
type Service interface {
	// Login exchanges credentials for a session. Invalid credentials fail
	// with an error and have no effect on any stored state.
	Login(ctx context.Context, email, password string) (Session, error)

	// Register creates an account and returns its first session.
	Register(ctx context.Context, name, email, password string) (Session, error)

	// Tasks returns one page of tasks matching the filter. An out-of-range
	// page yields an empty page, not an error.
	Tasks(ctx context.Context, f filter.State) (TaskPage, error)

	// Task returns a single task by ID.
	Task(ctx context.Context, id string) (Task, error)

	// CreateTask creates a new task.
	CreateTask(ctx context.Context, req CreateTask) (Task, error)

	// UpdateTask applies a partial update to a task.
	UpdateTask(ctx context.Context, id string, req UpdateTask) (Task, error)

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, id string) error

	// TaskActivity returns a task's change history, newest first.
	TaskActivity(ctx context.Context, id string) ([]Activity, error)

	// Users returns all users. Admin only.
	Users(ctx context.Context) ([]User, error)

	// SetUserRole changes a user's role. Admin only.
	SetUserRole(ctx context.Context, id, role string) (User, error)

	// Stats returns the dashboard overview.
	Stats(ctx context.Context) (Stats, error)
}

// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"taskdeck/internal/filter"
	"taskdeck/internal/service"
)

// FakeService is an in-memory implementation of service.Service for
// testing. Accounts are added with AddUser; credentials are
// "<email>"/"pw-<id>" and tokens are "token-<id>".
type FakeService struct {
	mu    sync.RWMutex
	users []service.User
	tasks []service.Task
	next  int

	// TasksCalls counts Tasks invocations, for dedup tests.
	TasksCalls int

	// Error injection for testing
	LoginErr        error
	RegisterErr     error
	TasksErr        error
	TaskErr         error
	CreateTaskErr   error
	UpdateTaskErr   error
	DeleteTaskErr   error
	ActivityErr     error
	UsersErr        error
	SetUserRoleErr  error
	StatsErr        error
}

// NewFakeService creates a FakeService with one admin account.
func NewFakeService() *FakeService {
	f := &FakeService{}
	f.users = []service.User{
		{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: service.RoleAdmin},
	}
	return f
}

// AddUser adds an account.
func (f *FakeService) AddUser(id, name, email, role string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, service.User{ID: id, Name: name, Email: email, Role: role})
}

// AddTask adds a task owned by the first user.
func (f *FakeService) AddTask(id, title, status, priority string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{
		ID:       id,
		Title:    title,
		Status:   status,
		Priority: priority,
		Owner:    f.users[0],
	})
}

// Login implements service.Service.
func (f *FakeService) Login(ctx context.Context, email, password string) (service.Session, error) {
	if f.LoginErr != nil {
		return service.Session{}, f.LoginErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, u := range f.users {
		if u.Email == email && password == "pw-"+u.ID {
			return service.Session{User: u, Token: "token-" + u.ID}, nil
		}
	}
	return service.Session{}, fmt.Errorf("invalid credentials: %w", service.ErrUnauthenticated)
}

// Register implements service.Service.
func (f *FakeService) Register(ctx context.Context, name, email, password string) (service.Session, error) {
	if f.RegisterErr != nil {
		return service.Session{}, f.RegisterErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	u := service.User{ID: fmt.Sprintf("r%d", f.next), Name: name, Email: email, Role: service.RoleMember}
	f.users = append(f.users, u)
	return service.Session{User: u, Token: "token-" + u.ID}, nil
}

// Tasks implements service.Service. Supports the status, priority, search,
// tags, assignee and owner facets, plus pagination. Out-of-range pages
// yield an empty page.
func (f *FakeService) Tasks(ctx context.Context, flt filter.State) (service.TaskPage, error) {
	f.mu.Lock()
	f.TasksCalls++
	f.mu.Unlock()
	if f.TasksErr != nil {
		return service.TaskPage{}, f.TasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	var matched []service.Task
	for _, t := range f.tasks {
		if flt.Status != "" && t.Status != flt.Status {
			continue
		}
		if flt.Priority != "" && t.Priority != flt.Priority {
			continue
		}
		if flt.Search != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(flt.Search)) {
			continue
		}
		if flt.Owner != "" && t.Owner.ID != flt.Owner {
			continue
		}
		if flt.Assignee != "" && (t.Assignee == nil || t.Assignee.ID != flt.Assignee) {
			continue
		}
		if flt.Tags != "" && !hasAnyTag(t.Tags, flt.Tags) {
			continue
		}
		matched = append(matched, t)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	pages := (total + flt.Limit - 1) / flt.Limit
	if pages == 0 {
		pages = 1
	}
	start := (flt.Page - 1) * flt.Limit
	var items []service.Task
	if start < total {
		end := start + flt.Limit
		if end > total {
			end = total
		}
		items = matched[start:end]
	}
	return service.TaskPage{Items: items, Page: flt.Page, Limit: flt.Limit, Total: total, Pages: pages}, nil
}

// Task implements service.Service.
func (f *FakeService) Task(ctx context.Context, id string) (service.Task, error) {
	if f.TaskErr != nil {
		return service.Task{}, f.TaskErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return service.Task{}, service.ErrNotFound
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, req service.CreateTask) (service.Task, error) {
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	status := req.Status
	if status == "" {
		status = service.StatusTodo
	}
	priority := req.Priority
	if priority == "" {
		priority = service.PriorityMedium
	}
	t := service.Task{
		ID:          fmt.Sprintf("t%d", f.next),
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     req.DueDate,
		Tags:        req.Tags,
		Owner:       f.users[0],
	}
	f.tasks = append(f.tasks, t)
	return t, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id string, req service.UpdateTask) (service.Task, error) {
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID != id {
			continue
		}
		if req.Title != "" {
			t.Title = req.Title
		}
		if req.Status != "" {
			t.Status = req.Status
		}
		if req.Priority != "" {
			t.Priority = req.Priority
		}
		if req.DueDate != "" {
			t.DueDate = req.DueDate
		}
		if req.Description != "" {
			t.Description = req.Description
		}
		f.tasks[i] = t
		return t, nil
	}
	return service.Task{}, service.ErrNotFound
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return service.ErrNotFound
}

// TaskActivity implements service.Service.
func (f *FakeService) TaskActivity(ctx context.Context, id string) ([]service.Activity, error) {
	if f.ActivityErr != nil {
		return nil, f.ActivityErr
	}
	return nil, nil
}

// Users implements service.Service.
func (f *FakeService) Users(ctx context.Context) ([]service.User, error) {
	if f.UsersErr != nil {
		return nil, f.UsersErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	users := make([]service.User, len(f.users))
	copy(users, f.users)
	return users, nil
}

// SetUserRole implements service.Service.
func (f *FakeService) SetUserRole(ctx context.Context, id, role string) (service.User, error) {
	if f.SetUserRoleErr != nil {
		return service.User{}, f.SetUserRoleErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.ID == id {
			f.users[i].Role = role
			return f.users[i], nil
		}
	}
	return service.User{}, service.ErrNotFound
}

// Stats implements service.Service.
func (f *FakeService) Stats(ctx context.Context) (service.Stats, error) {
	if f.StatsErr != nil {
		return service.Stats{}, f.StatsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	stats := service.Stats{ByStatus: map[string]int{}, ByPriority: map[string]int{}}
	for _, t := range f.tasks {
		stats.ByStatus[t.Status]++
		stats.ByPriority[t.Priority]++
	}
	return stats, nil
}

func hasAnyTag(tags []string, want string) bool {
	for _, w := range strings.Split(want, ",") {
		for _, tag := range tags {
			if tag == strings.TrimSpace(w) {
				return true
			}
		}
	}
	return false
}

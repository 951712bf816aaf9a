package taskapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskdeck/internal/backend/taskapi"
	"taskdeck/internal/config"
	"taskdeck/internal/filter"
	"taskdeck/internal/service"
)

func newClient(t *testing.T, srv *httptest.Server, token string) *taskapi.Client {
	t.Helper()
	cfg := &config.Config{Server: srv.URL + "/api", Timeout: 2 * time.Second}
	c, err := taskapi.New(context.Background(), cfg, token)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user":{"_id":"u1","name":"Alice","email":"alice@example.com","role":"admin"},"token":"tok-123"}`))
	}))
	defer srv.Close()

	sess, err := newClient(t, srv, "").Login(context.Background(), "alice@example.com", "hunter2")
	if err != nil {
		t.Fatal(err)
	}
	if sess.Token != "tok-123" || sess.User.Name != "Alice" {
		t.Errorf("session = %+v", sess)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid credentials"}`))
	}))
	defer srv.Close()

	_, err := newClient(t, srv, "").Login(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, service.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	var statusErr *taskapi.StatusError
	if !errors.As(err, &statusErr) || statusErr.Message != "invalid credentials" {
		t.Errorf("error = %v", err)
	}
}

func TestTasksSendsCanonicalQueryAndBearer(t *testing.T) {
	var gotQuery, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"items":[{"_id":"t1","title":"A","status":"todo","priority":"low","owner":{"_id":"u1"}}],"page":1,"limit":20,"total":1,"pages":1}`))
	}))
	defer srv.Close()

	f := filter.Default()
	f.Status = "todo"
	f.Search = "report"

	page, err := newClient(t, srv, "tok-123").Tasks(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	if gotQuery != f.Encode() {
		t.Errorf("query = %q, want %q", gotQuery, f.Encode())
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if len(page.Items) != 1 || page.Items[0].ID != "t1" {
		t.Errorf("page = %+v", page)
	}
}

func TestExpiredTokenMapsToUnauthenticated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expired"}`))
	}))
	defer srv.Close()

	_, err := newClient(t, srv, "stale").Tasks(context.Background(), filter.Default())
	if !errors.Is(err, service.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestMissingTaskMapsToNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"task not found"}`))
	}))
	defer srv.Close()

	_, err := newClient(t, srv, "tok").Task(context.Background(), "nope")
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateTaskPatchesPath(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"_id":"t1","title":"A","status":"completed","priority":"low","owner":{"_id":"u1"}}`))
	}))
	defer srv.Close()

	task, err := newClient(t, srv, "tok").UpdateTask(context.Background(), "t1", service.UpdateTask{Status: "completed"})
	if err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/api/tasks/t1" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if task.Status != "completed" {
		t.Errorf("task = %+v", task)
	}
}

func TestStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stats/overview" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"byStatus":{"todo":4},"byPriority":{"high":2},"overdue":1}`))
	}))
	defer srv.Close()

	stats, err := newClient(t, srv, "tok").Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.ByStatus["todo"] != 4 || stats.Overdue != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"taskdeck/internal/cache"
)

func TestGetFetchesOnceWhileFresh(t *testing.T) {
	c := cache.New[string](time.Minute)
	var fetches int32

	fetch := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&fetches, 1)
		return "result", nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.Get(context.Background(), "status=todo", fetch)
		if err != nil {
			t.Fatal(err)
		}
		if got != "result" {
			t.Errorf("got %q", got)
		}
	}

	if n := atomic.LoadInt32(&fetches); n != 1 {
		t.Errorf("fetches = %d, want 1", n)
	}
}

func TestGetDedupsConcurrentCalls(t *testing.T) {
	c := cache.New[string](time.Minute)
	var fetches int32
	release := make(chan struct{})

	fetch := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&fetches, 1)
		<-release
		return "result", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Get(context.Background(), "k", fetch); err != nil {
				t.Error(err)
			}
		}()
	}

	// Let the goroutines pile up on the in-flight fetch.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := atomic.LoadInt32(&fetches); n != 1 {
		t.Errorf("fetches = %d, want 1", n)
	}
}

func TestStaleEntryRefetches(t *testing.T) {
	c := cache.New[string](time.Minute)
	now := time.Now()
	c.SetClock(func() time.Time { return now })

	var fetches int
	fetch := func(ctx context.Context) (string, error) {
		fetches++
		return "result", nil
	}

	if _, err := c.Get(context.Background(), "k", fetch); err != nil {
		t.Fatal(err)
	}
	now = now.Add(2 * time.Minute)
	if _, err := c.Get(context.Background(), "k", fetch); err != nil {
		t.Fatal(err)
	}

	if fetches != 2 {
		t.Errorf("fetches = %d, want 2", fetches)
	}
}

func TestErrorsAreNotCached(t *testing.T) {
	c := cache.New[string](time.Minute)
	boom := errors.New("boom")
	var fetches int

	fetch := func(ctx context.Context) (string, error) {
		fetches++
		if fetches == 1 {
			return "", boom
		}
		return "result", nil
	}

	if _, err := c.Get(context.Background(), "k", fetch); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	got, err := c.Get(context.Background(), "k", fetch)
	if err != nil {
		t.Fatal(err)
	}
	if got != "result" {
		t.Errorf("got %q", got)
	}
	if fetches != 2 {
		t.Errorf("fetches = %d, want 2", fetches)
	}
}

func TestResultsLandUnderTheirOwnKey(t *testing.T) {
	c := cache.New[string](time.Minute)

	// A slow fetch for the old key completes after a fast fetch for the
	// new key; the old result must not replace the new key's entry.
	slowDone := make(chan struct{})
	go func() {
		defer close(slowDone)
		_, _ = c.Get(context.Background(), "old", func(ctx context.Context) (string, error) {
			time.Sleep(30 * time.Millisecond)
			return "old-result", nil
		})
	}()

	got, err := c.Get(context.Background(), "new", func(ctx context.Context) (string, error) {
		return "new-result", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != "new-result" {
		t.Errorf("got %q", got)
	}
	<-slowDone

	if v, ok := c.Peek("new"); !ok || v != "new-result" {
		t.Errorf("new key entry = %q (present=%v)", v, ok)
	}
	if v, ok := c.Peek("old"); !ok || v != "old-result" {
		t.Errorf("old key entry = %q (present=%v)", v, ok)
	}
}

func TestInvalidateAll(t *testing.T) {
	c := cache.New[string](time.Minute)
	if _, err := c.Get(context.Background(), "k", func(ctx context.Context) (string, error) {
		return "result", nil
	}); err != nil {
		t.Fatal(err)
	}

	c.InvalidateAll()

	if _, ok := c.Peek("k"); ok {
		t.Error("expected entry to be dropped")
	}
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskdeck/internal/filter"
	"taskdeck/internal/service"
)

// ErrTaskRefRequired is returned when no task reference was given.
var ErrTaskRefRequired = errors.New("task reference required")

// ErrAmbiguousTask is returned when a prefix matches more than one task.
var ErrAmbiguousTask = errors.New("ambiguous task reference")

// ResolveTask finds the task whose ID starts with prefix. An exact ID
// match wins outright; otherwise the prefix must match exactly one task
// across the whole listing.
func ResolveTask(ctx context.Context, svc service.Service, prefix string) (service.Task, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return service.Task{}, ErrTaskRefRequired
	}

	// An exact ID skips the scan.
	if task, err := svc.Task(ctx, prefix); err == nil {
		return task, nil
	} else if !errors.Is(err, service.ErrNotFound) {
		return service.Task{}, err
	}

	f := filter.Default()
	f.Limit = 100

	var match service.Task
	found := 0
	for {
		page, err := svc.Tasks(ctx, f)
		if err != nil {
			return service.Task{}, err
		}
		for _, t := range page.Items {
			if strings.HasPrefix(t.ID, prefix) {
				match = t
				found++
				if found > 1 {
					return service.Task{}, fmt.Errorf("%w: %s", ErrAmbiguousTask, prefix)
				}
			}
		}
		if f.Page >= page.Pages || len(page.Items) == 0 {
			break
		}
		f.Page++
	}

	if found == 0 {
		return service.Task{}, fmt.Errorf("task %s: %w", prefix, service.ErrNotFound)
	}
	return match, nil
}

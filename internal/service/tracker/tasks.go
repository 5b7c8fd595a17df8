package tracker

import (
	"context"
	"fmt"

	"github.com/openclaw/lifeos-server/internal/domain"
)

// ListTasks returns all tasks in insertion order.
func (s *Service) ListTasks(ctx context.Context) []*domain.Task {
	return s.store.Tasks.List(ctx)
}

// CreateTask creates a task. An empty status defaults to "todo".
func (s *Service) CreateTask(ctx context.Context, in CreateTaskInput) (*domain.Task, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("validate input: %w", err)
	}

	status := in.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}

	task, err := s.store.Tasks.Append(ctx, &domain.Task{
		Title:    in.Title,
		Status:   status,
		Priority: in.Priority,
	})
	if err != nil {
		return nil, fmt.Errorf("append task: %w", err)
	}

	s.rec.Record(ctx, fmt.Sprintf("Task Created: %q (%s)", task.Title, task.Status))
	return task, nil
}

// UpdateTask applies a partial update to the task with the given id.
func (s *Service) UpdateTask(ctx context.Context, id string, patch TaskPatch) (*domain.Task, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("validate input: %w", err)
	}

	task, err := s.store.Tasks.Update(ctx, id, func(t *domain.Task) {
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
	})
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	s.rec.Record(ctx, fmt.Sprintf("Task Updated: %q", task.Title))
	return task, nil
}

// DeleteTask removes the task with the given id.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	found, err := s.store.Tasks.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if !found {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}

	s.rec.Record(ctx, "Task Deleted")
	return nil
}

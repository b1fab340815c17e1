package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/juneandco/aisle/internal/model"
)

// TaskService manages a wedding's planning task board.
type TaskService struct {
	weddings WeddingStore
}

// TaskServiceConfig holds the dependencies for TaskService
type TaskServiceConfig struct {
	Weddings WeddingStore
}

// NewTaskService creates a new task service
func NewTaskService(cfg TaskServiceConfig) *TaskService {
	return &TaskService{weddings: cfg.Weddings}
}

// Add appends a pending task to the wedding's board.
func (s *TaskService) Add(ctx context.Context, weddingID string, req model.AddTaskRequest) (*model.Wedding, error) {
	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}

	wedding.Tasks = append(wedding.Tasks, model.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Assignee:    req.Assignee,
		Status:      model.TaskPending,
		Budget:      req.Budget,
	})

	if err := s.weddings.Upsert(ctx, wedding); err != nil {
		return nil, err
	}
	return wedding, nil
}

// UpdateStatus moves a task to a new status. Any valid status is accepted;
// tasks have no transition rules.
func (s *TaskService) UpdateStatus(ctx context.Context, weddingID, taskID string, req model.UpdateTaskStatusRequest) (*model.Wedding, error) {
	if !req.Status.IsValid() {
		return nil, ErrInvalidTaskStatus
	}

	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}

	idx := wedding.FindTask(taskID)
	if idx == -1 {
		return nil, ErrTaskNotFound
	}
	wedding.Tasks[idx].Status = req.Status

	if err := s.weddings.Upsert(ctx, wedding); err != nil {
		return nil, err
	}
	return wedding, nil
}

// Delete removes a task from the board. Deleting a task that is not there
// is an error rather than a silent no-op.
func (s *TaskService) Delete(ctx context.Context, weddingID, taskID string) (*model.Wedding, error) {
	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}

	kept := make([]model.Task, 0, len(wedding.Tasks))
	for _, t := range wedding.Tasks {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(wedding.Tasks) {
		return nil, ErrTaskNotFound
	}
	wedding.Tasks = kept

	if err := s.weddings.Upsert(ctx, wedding); err != nil {
		return nil, err
	}
	return wedding, nil
}

// List returns the wedding's task board. Empty is fine.
func (s *TaskService) List(ctx context.Context, weddingID string) ([]model.Task, error) {
	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}
	return wedding.Tasks, nil
}

// Get returns a single task by id.
func (s *TaskService) Get(ctx context.Context, weddingID, taskID string) (*model.Task, error) {
	wedding, err := s.weddings.Get(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	if wedding == nil {
		return nil, ErrWeddingNotFound
	}

	idx := wedding.FindTask(taskID)
	if idx == -1 {
		return nil, ErrTaskNotFound
	}
	return &wedding.Tasks[idx], nil
}

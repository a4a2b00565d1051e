package gorm

import (
	"context"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ListTasks implements port.TaskStore.
func (s *Store) ListTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []*Task

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		err := db.Preload("Assignee.Profile").
			Order("created_at ASC").
			Order("id ASC").
			Find(&tasks).Error
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrappedTasks := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		wrappedTasks = append(wrappedTasks, &wrappedTask{t})
	}

	return wrappedTasks, nil
}

// GetTaskByID implements port.TaskStore.
func (s *Store) GetTaskByID(ctx context.Context, id model.TaskID) (model.Task, error) {
	var task Task

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Preload("Assignee.Profile").First(&task, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedTask{&task}, nil
}

// CreateTask implements port.TaskStore.
func (s *Store) CreateTask(ctx context.Context, task model.Task) error {
	if !task.Status().Valid() {
		return errors.WithStack(port.ErrInvalidStatus)
	}

	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Omit("Assignee").Create(fromTask(task)).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// UpdateTaskStatus implements port.TaskStore.
func (s *Store) UpdateTaskStatus(ctx context.Context, id model.TaskID, status model.TaskStatus) error {
	if !status.Valid() {
		return errors.WithStack(port.ErrInvalidStatus)
	}

	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		result := db.Model(&Task{}).Where("id = ?", string(id)).Update("status", string(status))
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteTask implements port.TaskStore.
func (s *Store) DeleteTask(ctx context.Context, id model.TaskID) error {
	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		result := db.Delete(&Task{}, "id = ?", string(id))
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

var _ port.TaskStore = &Store{}

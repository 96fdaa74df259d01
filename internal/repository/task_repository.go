package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"projecthub/internal/model"
)

// TaskFilter narrows the task list query within a project.
type TaskFilter struct {
	Status        string
	AssigneeEmail string
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task inside its own transaction
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(task).Error
	})
}

// ListByProject retrieves a project's tasks matching the filter, newest first
func (r *TaskRepository) ListByProject(ctx context.Context, projectID uint, filter TaskFilter) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Where("project_id = ?", projectID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.AssigneeEmail != "" {
		query = query.Where("assignee_email = ?", filter.AssigneeEmail)
	}

	var tasks []model.Task
	err := query.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

// GetByID retrieves a task by its ID, nil when not found
func (r *TaskRepository) GetByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Save persists all fields of an existing task inside its own transaction
func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(task)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		return nil
	})
}

// Delete removes a task by its ID; comments cascade
func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// CountByProject counts a project's tasks, optionally restricted to one status
func (r *TaskRepository) CountByProject(ctx context.Context, projectID uint, status model.TaskStatus) (int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{}).Where("project_id = ?", projectID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// CountByOrganization counts tasks across all of an organization's projects,
// optionally restricted to one status
func (r *TaskRepository) CountByOrganization(ctx context.Context, orgID uint, status model.TaskStatus) (int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{}).
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("projects.organization_id = ?", orgID)
	if status != "" {
		query = query.Where("tasks.status = ?", status)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

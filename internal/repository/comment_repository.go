package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"projecthub/internal/model"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create adds a new comment inside its own transaction
func (r *CommentRepository) Create(ctx context.Context, comment *model.TaskComment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(comment).Error
	})
}

// ListByTask retrieves all comments on a task, newest first
func (r *CommentRepository) ListByTask(ctx context.Context, taskID uint) ([]model.TaskComment, error) {
	var comments []model.TaskComment
	err := r.db.WithContext(ctx).Where("task_id = ?", taskID).
		Order("timestamp DESC").Find(&comments).Error
	return comments, err
}

// GetByID retrieves a comment by its ID, nil when not found
func (r *CommentRepository) GetByID(ctx context.Context, id uint) (*model.TaskComment, error) {
	var comment model.TaskComment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes a comment by its ID
func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.TaskComment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// CountByTask counts all comments on a task
func (r *CommentRepository) CountByTask(ctx context.Context, taskID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TaskComment{}).
		Where("task_id = ?", taskID).Count(&count).Error
	return count, err
}

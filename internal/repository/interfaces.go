package repository

import (
	"context"

	"projecthub/internal/model"
)

// Repository interfaces consumed by the GraphQL layer. Mocked in tests.

type OrganizationRepositoryInterface interface {
	Create(ctx context.Context, org *model.Organization) error
	List(ctx context.Context) ([]model.Organization, error)
	GetByID(ctx context.Context, id uint) (*model.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*model.Organization, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type ProjectRepositoryInterface interface {
	Create(ctx context.Context, project *model.Project) error
	List(ctx context.Context, filter ProjectFilter) ([]model.Project, error)
	GetByID(ctx context.Context, id uint) (*model.Project, error)
	Save(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id uint) error
	CountByOrganization(ctx context.Context, orgID uint) (int64, error)
	CountByOrganizationAndStatus(ctx context.Context, orgID uint, status model.ProjectStatus) (int64, error)
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *model.Task) error
	ListByProject(ctx context.Context, projectID uint, filter TaskFilter) ([]model.Task, error)
	GetByID(ctx context.Context, id uint) (*model.Task, error)
	Save(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id uint) error
	CountByProject(ctx context.Context, projectID uint, status model.TaskStatus) (int64, error)
	CountByOrganization(ctx context.Context, orgID uint, status model.TaskStatus) (int64, error)
}

type CommentRepositoryInterface interface {
	Create(ctx context.Context, comment *model.TaskComment) error
	ListByTask(ctx context.Context, taskID uint) ([]model.TaskComment, error)
	GetByID(ctx context.Context, id uint) (*model.TaskComment, error)
	Delete(ctx context.Context, id uint) error
	CountByTask(ctx context.Context, taskID uint) (int64, error)
}

var _ OrganizationRepositoryInterface = (*OrganizationRepository)(nil)
var _ ProjectRepositoryInterface = (*ProjectRepository)(nil)
var _ TaskRepositoryInterface = (*TaskRepository)(nil)
var _ CommentRepositoryInterface = (*CommentRepository)(nil)

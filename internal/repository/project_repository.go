package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"projecthub/internal/model"
)

// ProjectFilter narrows the project list query. Zero values mean "no filter".
type ProjectFilter struct {
	OrganizationSlug string
	Status           string
	Search           string
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create adds a new project inside its own transaction
func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(project).Error
	})
}

// List retrieves projects matching the filter, newest first
func (r *ProjectRepository) List(ctx context.Context, filter ProjectFilter) ([]model.Project, error) {
	query := r.db.WithContext(ctx).Model(&model.Project{})

	if filter.OrganizationSlug != "" {
		query = query.Joins("JOIN organizations ON organizations.id = projects.organization_id").
			Where("organizations.slug = ?", filter.OrganizationSlug)
	}
	if filter.Status != "" {
		query = query.Where("projects.status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("projects.name ILIKE ? OR projects.description ILIKE ?", pattern, pattern)
	}

	var projects []model.Project
	err := query.Order("projects.created_at DESC").Find(&projects).Error
	return projects, err
}

// GetByID retrieves a project by its ID, nil when not found
func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Save persists all fields of an existing project inside its own transaction
func (r *ProjectRepository) Save(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(project)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProjectNotFound
		}
		return nil
	})
}

// Delete removes a project by its ID; tasks and comments cascade
func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// CountByOrganization counts all projects of an organization
func (r *ProjectRepository) CountByOrganization(ctx context.Context, orgID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("organization_id = ?", orgID).Count(&count).Error
	return count, err
}

// CountByOrganizationAndStatus counts an organization's projects in one status
func (r *ProjectRepository) CountByOrganizationAndStatus(ctx context.Context, orgID uint, status model.ProjectStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("organization_id = ? AND status = ?", orgID, status).Count(&count).Error
	return count, err
}

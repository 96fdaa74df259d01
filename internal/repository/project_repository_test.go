package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"projecthub/internal/model"
	"projecthub/internal/repository"
)

func TestProjectRepository_List_FiltersBySlugStatusAndSearch(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	projectRepo := repository.NewProjectRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "projects" JOIN organizations ON organizations\.id = projects\.organization_id WHERE organizations\.slug = .* AND projects\.status = .* AND \(projects\.name ILIKE .* OR projects\.description ILIKE .*\) ORDER BY projects\.created_at DESC`).
		WithArgs("acme-corp", "ACTIVE", "%api%", "%api%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "name", "status"}).
			AddRow(7, 1, "API Gateway", "ACTIVE"))

	// Act
	projects, err := projectRepo.List(context.Background(), repository.ProjectFilter{
		OrganizationSlug: "acme-corp",
		Status:           "ACTIVE",
		Search:           "api",
	})

	// Assert
	assert.NoError(t, err)
	assert.Len(t, projects, 1)
	assert.Equal(t, "API Gateway", projects[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_GetByID_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	projectRepo := repository.NewProjectRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "projects" WHERE id = .*`).
		WithArgs(uint(99), 1).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	project, err := projectRepo.GetByID(context.Background(), 99)

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, project)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_CountByOrganizationAndStatus(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	projectRepo := repository.NewProjectRepository(gormDB)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects" WHERE organization_id = .* AND status = .*`).
		WithArgs(uint(1), "ACTIVE").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	// Act
	count, err := projectRepo.CountByOrganizationAndStatus(context.Background(), 1, model.ProjectActive)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_CountByOrganization_JoinsProjects(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "tasks" JOIN projects ON projects\.id = tasks\.project_id WHERE projects\.organization_id = .* AND tasks\.status = .*`).
		WithArgs(uint(1), "DONE").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	// Act
	count, err := taskRepo.CountByOrganization(context.Background(), 1, model.TaskDone)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(6), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Delete_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks"`).
		WithArgs(uint(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Delete(context.Background(), 42)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"projecthub/internal/model"
	"projecthub/internal/repository"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func TestOrganizationRepository_Create(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	orgRepo := repository.NewOrganizationRepository(gormDB)

	org := &model.Organization{
		Name:         "Acme Corp",
		Slug:         "acme-corp",
		ContactEmail: "contact@acme.example",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "organizations"`).
		WithArgs(org.Name, org.Slug, org.ContactEmail, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	// Act
	err := orgRepo.Create(context.Background(), org)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationRepository_GetBySlug_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	orgRepo := repository.NewOrganizationRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "organizations" WHERE slug = .*`).
		WithArgs("acme-corp", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "contact_email"}).
			AddRow(1, "Acme Corp", "acme-corp", "contact@acme.example"))

	// Act
	org, err := orgRepo.GetBySlug(context.Background(), "acme-corp")

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, org)
	assert.Equal(t, uint(1), org.ID)
	assert.Equal(t, "acme-corp", org.Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationRepository_GetBySlug_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	orgRepo := repository.NewOrganizationRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "organizations" WHERE slug = .*`).
		WithArgs("nonexistent", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	org, err := orgRepo.GetBySlug(context.Background(), "nonexistent")

	// Assert
	assert.NoError(t, err) // not found is not an error
	assert.Nil(t, org)     // but the organization is nil
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationRepository_GetBySlug_Error(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	orgRepo := repository.NewOrganizationRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "organizations" WHERE slug = .*`).
		WithArgs("acme-corp", 1).
		WillReturnError(assert.AnError)

	// Act
	org, err := orgRepo.GetBySlug(context.Background(), "acme-corp")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, org)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationRepository_SlugExists(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	orgRepo := repository.NewOrganizationRepository(gormDB)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "organizations" WHERE slug = .*`).
		WithArgs("acme-corp").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	// Act
	exists, err := orgRepo.SlugExists(context.Background(), "acme-corp")

	// Assert
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationRepository_Delete_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	orgRepo := repository.NewOrganizationRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "organizations"`).
		WithArgs(uint(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	err := orgRepo.Delete(context.Background(), 42)

	// Assert
	assert.ErrorIs(t, err, repository.ErrOrganizationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

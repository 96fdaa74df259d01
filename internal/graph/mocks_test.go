package graph_test

import (
	"context"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"projecthub/internal/graph"
	"projecthub/internal/model"
	"projecthub/internal/repository"
)

// Mock repositories backing the resolver under test

type MockOrganizationRepo struct {
	mock.Mock
}

func (m *MockOrganizationRepo) Create(ctx context.Context, org *model.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepo) List(ctx context.Context) ([]model.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Organization), args.Error(1)
}

func (m *MockOrganizationRepo) GetByID(ctx context.Context, id uint) (*model.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrganizationRepo) GetBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrganizationRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrganizationRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepo) List(ctx context.Context, filter repository.ProjectFilter) ([]model.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id uint) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Save(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepo) CountByOrganization(ctx context.Context, orgID uint) (int64, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepo) CountByOrganizationAndStatus(ctx context.Context, orgID uint, status model.ProjectStatus) (int64, error) {
	args := m.Called(ctx, orgID, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepo) ListByProject(ctx context.Context, projectID uint, filter repository.TaskFilter) ([]model.Task, error) {
	args := m.Called(ctx, projectID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepo) GetByID(ctx context.Context, id uint) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepo) Save(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepo) CountByProject(ctx context.Context, projectID uint, status model.TaskStatus) (int64, error) {
	args := m.Called(ctx, projectID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepo) CountByOrganization(ctx context.Context, orgID uint, status model.TaskStatus) (int64, error) {
	args := m.Called(ctx, orgID, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(ctx context.Context, comment *model.TaskComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepo) ListByTask(ctx context.Context, taskID uint) ([]model.TaskComment, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TaskComment), args.Error(1)
}

func (m *MockCommentRepo) GetByID(ctx context.Context, id uint) (*model.TaskComment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskComment), args.Error(1)
}

func (m *MockCommentRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepo) CountByTask(ctx context.Context, taskID uint) (int64, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(int64), args.Error(1)
}

type testMocks struct {
	orgs     *MockOrganizationRepo
	projects *MockProjectRepo
	tasks    *MockTaskRepo
	comments *MockCommentRepo
}

func setupSchema(t *testing.T) (graphql.Schema, *testMocks) {
	mocks := &testMocks{
		orgs:     new(MockOrganizationRepo),
		projects: new(MockProjectRepo),
		tasks:    new(MockTaskRepo),
		comments: new(MockCommentRepo),
	}
	resolver := graph.NewResolver(mocks.orgs, mocks.projects, mocks.tasks, mocks.comments)
	schema, err := graph.NewSchema(resolver)
	assert.NoError(t, err)
	return schema, mocks
}

// execute runs a request against the schema and returns the result.
func execute(schema graphql.Schema, query string) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       context.Background(),
	})
}

func dataField(t *testing.T, result *graphql.Result, field string) map[string]interface{} {
	data, ok := result.Data.(map[string]interface{})
	assert.True(t, ok, "result data should be a map")
	payload, ok := data[field].(map[string]interface{})
	assert.True(t, ok, "field %q should be a map", field)
	return payload
}

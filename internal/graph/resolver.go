package graph

import (
	"projecthub/internal/repository"
)

// Resolver owns the data access used by every query and mutation.
type Resolver struct {
	orgs     repository.OrganizationRepositoryInterface
	projects repository.ProjectRepositoryInterface
	tasks    repository.TaskRepositoryInterface
	comments repository.CommentRepositoryInterface
}

func NewResolver(
	orgs repository.OrganizationRepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	tasks repository.TaskRepositoryInterface,
	comments repository.CommentRepositoryInterface,
) *Resolver {
	return &Resolver{
		orgs:     orgs,
		projects: projects,
		tasks:    tasks,
		comments: comments,
	}
}

// ProjectStatistics aggregates one organization's projects and tasks.
type ProjectStatistics struct {
	TotalProjects     int64   `json:"totalProjects"`
	ActiveProjects    int64   `json:"activeProjects"`
	CompletedProjects int64   `json:"completedProjects"`
	OnHoldProjects    int64   `json:"onHoldProjects"`
	TotalTasks        int64   `json:"totalTasks"`
	CompletedTasks    int64   `json:"completedTasks"`
	CompletionRate    float64 `json:"completionRate"`
}

// TaskStatistics breaks one project's tasks down by status.
type TaskStatistics struct {
	TodoCount            int64   `json:"todoCount"`
	InProgressCount      int64   `json:"inProgressCount"`
	DoneCount            int64   `json:"doneCount"`
	TotalCount           int64   `json:"totalCount"`
	CompletionPercentage float64 `json:"completionPercentage"`
}

package graph

import (
	"errors"

	"github.com/graphql-go/graphql"

	"projecthub/internal/model"
	"projecthub/internal/repository"
)

func uintArg(args map[string]interface{}, name string) (uint, bool) {
	v, ok := args[name].(int)
	if !ok || v < 0 {
		return 0, false
	}
	return uint(v), true
}

func stringArg(args map[string]interface{}, name string) string {
	s, _ := args[name].(string)
	return s
}

func (b *schemaBuilder) buildQueryType() *graphql.Object {
	r := b.r
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"organizations": &graphql.Field{
				Type: graphql.NewList(b.organization),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.orgs.List(p.Context)
				},
			},
			"organization": &graphql.Field{
				Type: b.organization,
				Args: graphql.FieldConfigArgument{
					"slug": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.orgs.GetBySlug(p.Context, stringArg(p.Args, "slug"))
				},
			},
			"projects": &graphql.Field{
				Type: graphql.NewList(b.project),
				Args: graphql.FieldConfigArgument{
					"organizationSlug": &graphql.ArgumentConfig{Type: graphql.String},
					"status":           &graphql.ArgumentConfig{Type: graphql.String},
					"search":           &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.projects.List(p.Context, repository.ProjectFilter{
						OrganizationSlug: stringArg(p.Args, "organizationSlug"),
						Status:           stringArg(p.Args, "status"),
						Search:           stringArg(p.Args, "search"),
					})
				},
			},
			"project": &graphql.Field{
				Type: b.project,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, ok := uintArg(p.Args, "id")
					if !ok {
						return nil, nil
					}
					return r.projects.GetByID(p.Context, id)
				},
			},
			"tasks": &graphql.Field{
				Type: graphql.NewList(b.task),
				Args: graphql.FieldConfigArgument{
					"projectId":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"status":        &graphql.ArgumentConfig{Type: graphql.String},
					"assigneeEmail": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					projectID, ok := uintArg(p.Args, "projectId")
					if !ok {
						return nil, nil
					}
					return r.tasks.ListByProject(p.Context, projectID, repository.TaskFilter{
						Status:        stringArg(p.Args, "status"),
						AssigneeEmail: stringArg(p.Args, "assigneeEmail"),
					})
				},
			},
			"task": &graphql.Field{
				Type: b.task,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, ok := uintArg(p.Args, "id")
					if !ok {
						return nil, nil
					}
					return r.tasks.GetByID(p.Context, id)
				},
			},
			"taskComments": &graphql.Field{
				Type: graphql.NewList(b.comment),
				Args: graphql.FieldConfigArgument{
					"taskId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					taskID, ok := uintArg(p.Args, "taskId")
					if !ok {
						return nil, nil
					}
					return r.comments.ListByTask(p.Context, taskID)
				},
			},
			// Unlike the plain lookups above, an unknown slug here surfaces
			// as a request-level error.
			"projectStatistics": &graphql.Field{
				Type: b.projectStatistics,
				Args: graphql.FieldConfigArgument{
					"organizationSlug": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.projectStatistics(p, stringArg(p.Args, "organizationSlug"))
				},
			},
			"projectStatusChoices": &graphql.Field{
				Type: graphql.NewList(b.statusChoice),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return model.ProjectStatusChoices, nil
				},
			},
			"taskStatusChoices": &graphql.Field{
				Type: graphql.NewList(b.statusChoice),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return model.TaskStatusChoices, nil
				},
			},
		},
	})
}

func (r *Resolver) projectStatistics(p graphql.ResolveParams, slug string) (interface{}, error) {
	org, err := r.orgs.GetBySlug(p.Context, slug)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, errors.New("Organization not found")
	}

	stats := ProjectStatistics{}
	if stats.TotalProjects, err = r.projects.CountByOrganization(p.Context, org.ID); err != nil {
		return nil, err
	}
	if stats.ActiveProjects, err = r.projects.CountByOrganizationAndStatus(p.Context, org.ID, model.ProjectActive); err != nil {
		return nil, err
	}
	if stats.CompletedProjects, err = r.projects.CountByOrganizationAndStatus(p.Context, org.ID, model.ProjectCompleted); err != nil {
		return nil, err
	}
	if stats.OnHoldProjects, err = r.projects.CountByOrganizationAndStatus(p.Context, org.ID, model.ProjectOnHold); err != nil {
		return nil, err
	}
	if stats.TotalTasks, err = r.tasks.CountByOrganization(p.Context, org.ID, ""); err != nil {
		return nil, err
	}
	if stats.CompletedTasks, err = r.tasks.CountByOrganization(p.Context, org.ID, model.TaskDone); err != nil {
		return nil, err
	}
	stats.CompletionRate = model.CompletionPercentage(stats.CompletedTasks, stats.TotalTasks)
	return stats, nil
}

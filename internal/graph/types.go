package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"projecthub/internal/model"
)

// schemaBuilder wires the object types together; GraphQL type references are
// cyclic in principle, so every type lives on the builder and is constructed
// exactly once, leaves first.
type schemaBuilder struct {
	r *Resolver

	organization      *graphql.Object
	project           *graphql.Object
	task              *graphql.Object
	comment           *graphql.Object
	statusChoice      *graphql.Object
	projectStatistics *graphql.Object
	taskStatistics    *graphql.Object
}

func newSchemaBuilder(r *Resolver) *schemaBuilder {
	b := &schemaBuilder{r: r}
	b.buildStatusChoiceType()
	b.buildStatisticsTypes()
	b.buildOrganizationType()
	b.buildProjectType()
	b.buildTaskType()
	b.buildCommentType()
	return b
}

// Sources arrive either as values (list results) or pointers (lookups).

func organizationFromSource(src interface{}) *model.Organization {
	switch v := src.(type) {
	case *model.Organization:
		return v
	case model.Organization:
		return &v
	}
	return nil
}

func projectFromSource(src interface{}) *model.Project {
	switch v := src.(type) {
	case *model.Project:
		return v
	case model.Project:
		return &v
	}
	return nil
}

func taskFromSource(src interface{}) *model.Task {
	switch v := src.(type) {
	case *model.Task:
		return v
	case model.Task:
		return &v
	}
	return nil
}

func commentFromSource(src interface{}) *model.TaskComment {
	switch v := src.(type) {
	case *model.TaskComment:
		return v
	case model.TaskComment:
		return &v
	}
	return nil
}

func (b *schemaBuilder) buildStatusChoiceType() {
	b.statusChoice = graphql.NewObject(graphql.ObjectConfig{
		Name: "StatusChoice",
		Fields: graphql.Fields{
			"value":   &graphql.Field{Type: graphql.String},
			"display": &graphql.Field{Type: graphql.String},
		},
	})
}

func (b *schemaBuilder) buildStatisticsTypes() {
	b.projectStatistics = graphql.NewObject(graphql.ObjectConfig{
		Name: "ProjectStatistics",
		Fields: graphql.Fields{
			"totalProjects":     &graphql.Field{Type: graphql.Int},
			"activeProjects":    &graphql.Field{Type: graphql.Int},
			"completedProjects": &graphql.Field{Type: graphql.Int},
			"onHoldProjects":    &graphql.Field{Type: graphql.Int},
			"totalTasks":        &graphql.Field{Type: graphql.Int},
			"completedTasks":    &graphql.Field{Type: graphql.Int},
			"completionRate":    &graphql.Field{Type: graphql.Float},
		},
	})

	b.taskStatistics = graphql.NewObject(graphql.ObjectConfig{
		Name: "TaskStatistics",
		Fields: graphql.Fields{
			"todoCount":            &graphql.Field{Type: graphql.Int},
			"inProgressCount":      &graphql.Field{Type: graphql.Int},
			"doneCount":            &graphql.Field{Type: graphql.Int},
			"totalCount":           &graphql.Field{Type: graphql.Int},
			"completionPercentage": &graphql.Field{Type: graphql.Float},
		},
	})
}

func (b *schemaBuilder) buildOrganizationType() {
	r := b.r
	b.organization = graphql.NewObject(graphql.ObjectConfig{
		Name: "Organization",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.Int},
			"name":         &graphql.Field{Type: graphql.String},
			"slug":         &graphql.Field{Type: graphql.String},
			"contactEmail": &graphql.Field{Type: graphql.String},
			"createdAt":    &graphql.Field{Type: graphql.DateTime},
			"updatedAt":    &graphql.Field{Type: graphql.DateTime},
			"projectCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					org := organizationFromSource(p.Source)
					if org == nil {
						return nil, nil
					}
					return r.projects.CountByOrganization(p.Context, org.ID)
				},
			},
			"activeProjectsCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					org := organizationFromSource(p.Source)
					if org == nil {
						return nil, nil
					}
					return r.projects.CountByOrganizationAndStatus(p.Context, org.ID, model.ProjectActive)
				},
			},
		},
	})
}

func (b *schemaBuilder) buildProjectType() {
	r := b.r
	b.project = graphql.NewObject(graphql.ObjectConfig{
		Name: "Project",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.Int},
			"name":        &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
			"status":      &graphql.Field{Type: graphql.String},
			"dueDate":     &graphql.Field{Type: dateScalar},
			"createdAt":   &graphql.Field{Type: graphql.DateTime},
			"updatedAt":   &graphql.Field{Type: graphql.DateTime},
			"organization": &graphql.Field{
				Type: b.organization,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					project := projectFromSource(p.Source)
					if project == nil {
						return nil, nil
					}
					return r.orgs.GetByID(p.Context, project.OrganizationID)
				},
			},
			"taskCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					project := projectFromSource(p.Source)
					if project == nil {
						return nil, nil
					}
					return r.tasks.CountByProject(p.Context, project.ID, "")
				},
			},
			"completedTasksCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					project := projectFromSource(p.Source)
					if project == nil {
						return nil, nil
					}
					return r.tasks.CountByProject(p.Context, project.ID, model.TaskDone)
				},
			},
			"completionPercentage": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					project := projectFromSource(p.Source)
					if project == nil {
						return nil, nil
					}
					total, err := r.tasks.CountByProject(p.Context, project.ID, "")
					if err != nil {
						return nil, err
					}
					done, err := r.tasks.CountByProject(p.Context, project.ID, model.TaskDone)
					if err != nil {
						return nil, err
					}
					return model.CompletionPercentage(done, total), nil
				},
			},
			"isOverdue": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					project := projectFromSource(p.Source)
					if project == nil {
						return nil, nil
					}
					return project.IsOverdue(time.Now()), nil
				},
			},
			"taskStatistics": &graphql.Field{
				Type: b.taskStatistics,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					project := projectFromSource(p.Source)
					if project == nil {
						return nil, nil
					}
					todo, err := r.tasks.CountByProject(p.Context, project.ID, model.TaskTodo)
					if err != nil {
						return nil, err
					}
					inProgress, err := r.tasks.CountByProject(p.Context, project.ID, model.TaskInProgress)
					if err != nil {
						return nil, err
					}
					done, err := r.tasks.CountByProject(p.Context, project.ID, model.TaskDone)
					if err != nil {
						return nil, err
					}
					total := todo + inProgress + done
					return TaskStatistics{
						TodoCount:            todo,
						InProgressCount:      inProgress,
						DoneCount:            done,
						TotalCount:           total,
						CompletionPercentage: model.CompletionPercentage(done, total),
					}, nil
				},
			},
		},
	})
}

func (b *schemaBuilder) buildTaskType() {
	r := b.r
	b.task = graphql.NewObject(graphql.ObjectConfig{
		Name: "Task",
		Fields: graphql.Fields{
			"id":            &graphql.Field{Type: graphql.Int},
			"title":         &graphql.Field{Type: graphql.String},
			"description":   &graphql.Field{Type: graphql.String},
			"status":        &graphql.Field{Type: graphql.String},
			"assigneeEmail": &graphql.Field{Type: graphql.String},
			"dueDate":       &graphql.Field{Type: graphql.DateTime},
			"createdAt":     &graphql.Field{Type: graphql.DateTime},
			"updatedAt":     &graphql.Field{Type: graphql.DateTime},
			"project": &graphql.Field{
				Type: b.project,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					task := taskFromSource(p.Source)
					if task == nil {
						return nil, nil
					}
					return r.projects.GetByID(p.Context, task.ProjectID)
				},
			},
			// organization is derived through the ownership chain, never a
			// second foreign key.
			"organization": &graphql.Field{
				Type: b.organization,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					task := taskFromSource(p.Source)
					if task == nil {
						return nil, nil
					}
					project, err := r.projects.GetByID(p.Context, task.ProjectID)
					if err != nil || project == nil {
						return nil, err
					}
					return r.orgs.GetByID(p.Context, project.OrganizationID)
				},
			},
			"commentCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					task := taskFromSource(p.Source)
					if task == nil {
						return nil, nil
					}
					return r.comments.CountByTask(p.Context, task.ID)
				},
			},
			"isOverdue": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					task := taskFromSource(p.Source)
					if task == nil {
						return nil, nil
					}
					return task.IsOverdue(time.Now()), nil
				},
			},
		},
	})
}

func (b *schemaBuilder) buildCommentType() {
	r := b.r
	b.comment = graphql.NewObject(graphql.ObjectConfig{
		Name: "TaskComment",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.Int},
			"content":     &graphql.Field{Type: graphql.String},
			"authorEmail": &graphql.Field{Type: graphql.String},
			"timestamp":   &graphql.Field{Type: graphql.DateTime},
			"updatedAt":   &graphql.Field{Type: graphql.DateTime},
			"task": &graphql.Field{
				Type: b.task,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					comment := commentFromSource(p.Source)
					if comment == nil {
						return nil, nil
					}
					return r.tasks.GetByID(p.Context, comment.TaskID)
				},
			},
			"organization": &graphql.Field{
				Type: b.organization,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					comment := commentFromSource(p.Source)
					if comment == nil {
						return nil, nil
					}
					task, err := r.tasks.GetByID(p.Context, comment.TaskID)
					if err != nil || task == nil {
						return nil, err
					}
					project, err := r.projects.GetByID(p.Context, task.ProjectID)
					if err != nil || project == nil {
						return nil, err
					}
					return r.orgs.GetByID(p.Context, project.OrganizationID)
				},
			},
		},
	})
}

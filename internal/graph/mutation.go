package graph

import (
	"errors"
	"strings"
	"time"

	"github.com/graphql-go/graphql"

	"projecthub/internal/model"
	"projecthub/internal/repository"
	"projecthub/internal/validate"
)

// Every mutation resolves to one of these payloads: the entity when the
// write went through, success=false plus accumulated messages otherwise.

type organizationPayload struct {
	Organization *model.Organization `json:"organization"`
	Success      bool                `json:"success"`
	Errors       []string            `json:"errors"`
}

type projectPayload struct {
	Project *model.Project `json:"project"`
	Success bool           `json:"success"`
	Errors  []string       `json:"errors"`
}

type taskPayload struct {
	Task    *model.Task `json:"task"`
	Success bool        `json:"success"`
	Errors  []string    `json:"errors"`
}

type commentPayload struct {
	Comment *model.TaskComment `json:"comment"`
	Success bool               `json:"success"`
	Errors  []string           `json:"errors"`
}

type deletePayload struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

func (b *schemaBuilder) payloadType(name string, entityField string, entityType *graphql.Object) *graphql.Object {
	fields := graphql.Fields{
		"success": &graphql.Field{Type: graphql.Boolean},
		"errors":  &graphql.Field{Type: graphql.NewList(graphql.String)},
	}
	if entityType != nil {
		fields[entityField] = &graphql.Field{Type: entityType}
	}
	return graphql.NewObject(graphql.ObjectConfig{Name: name, Fields: fields})
}

func (b *schemaBuilder) buildMutationType() *graphql.Object {
	r := b.r

	orgPayloadType := b.payloadType("CreateOrganizationPayload", "organization", b.organization)
	projectPayloadType := b.payloadType("ProjectPayload", "project", b.project)
	taskPayloadType := b.payloadType("TaskPayload", "task", b.task)
	commentPayloadType := b.payloadType("CreateTaskCommentPayload", "comment", b.comment)
	deletePayloadType := b.payloadType("DeletePayload", "", nil)

	createOrganizationInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateOrganizationInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"contactEmail": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	createProjectInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateProjectInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"organizationId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"name":           &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"description":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"status":         &graphql.InputObjectFieldConfig{Type: graphql.String},
			"dueDate":        &graphql.InputObjectFieldConfig{Type: dateScalar},
		},
	})

	createTaskInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateTaskInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"projectId":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"title":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"description":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"status":        &graphql.InputObjectFieldConfig{Type: graphql.String},
			"assigneeEmail": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"dueDate":       &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		},
	})

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createOrganization": &graphql.Field{
				Type: orgPayloadType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createOrganizationInput)},
				},
				Resolve: r.createOrganization,
			},
			"createProject": &graphql.Field{
				Type: projectPayloadType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createProjectInput)},
				},
				Resolve: r.createProject,
			},
			"createTask": &graphql.Field{
				Type: taskPayloadType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createTaskInput)},
				},
				Resolve: r.createTask,
			},
			"createTaskComment": &graphql.Field{
				Type: commentPayloadType,
				Args: graphql.FieldConfigArgument{
					"taskId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"content":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"authorEmail": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.createTaskComment,
			},
			"updateProject": &graphql.Field{
				Type: projectPayloadType,
				Args: graphql.FieldConfigArgument{
					"projectId":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"name":        &graphql.ArgumentConfig{Type: graphql.String},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
					"status":      &graphql.ArgumentConfig{Type: graphql.String},
					"dueDate":     &graphql.ArgumentConfig{Type: dateScalar},
				},
				Resolve: r.updateProject,
			},
			"updateTask": &graphql.Field{
				Type: taskPayloadType,
				Args: graphql.FieldConfigArgument{
					"taskId":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"title":         &graphql.ArgumentConfig{Type: graphql.String},
					"description":   &graphql.ArgumentConfig{Type: graphql.String},
					"status":        &graphql.ArgumentConfig{Type: graphql.String},
					"assigneeEmail": &graphql.ArgumentConfig{Type: graphql.String},
					"dueDate":       &graphql.ArgumentConfig{Type: graphql.DateTime},
				},
				Resolve: r.updateTask,
			},
			"deleteProject": &graphql.Field{
				Type: deletePayloadType,
				Args: graphql.FieldConfigArgument{
					"projectId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.deleteProject,
			},
			"deleteTask": &graphql.Field{
				Type: deletePayloadType,
				Args: graphql.FieldConfigArgument{
					"taskId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.deleteTask,
			},
			"deleteTaskComment": &graphql.Field{
				Type: deletePayloadType,
				Args: graphql.FieldConfigArgument{
					"commentId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.deleteTaskComment,
			},
		},
	})
}

func (r *Resolver) createOrganization(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["input"].(map[string]interface{})
	name := stringArg(input, "name")
	contactEmail := stringArg(input, "contactEmail")

	var errs []string
	if !validate.Email(contactEmail) {
		errs = append(errs, "Invalid email format")
	}

	slug := validate.Slugify(name)
	exists, err := r.orgs.SlugExists(p.Context, slug)
	if err != nil {
		return organizationPayload{Success: false, Errors: []string{err.Error()}}, nil
	}
	if exists {
		errs = append(errs, "Organization with this slug already exists")
	}

	if len(errs) > 0 {
		return organizationPayload{Success: false, Errors: errs}, nil
	}

	org := &model.Organization{
		Name:         name,
		Slug:         slug,
		ContactEmail: contactEmail,
	}
	if err := r.orgs.Create(p.Context, org); err != nil {
		return organizationPayload{Success: false, Errors: []string{err.Error()}}, nil
	}
	return organizationPayload{Organization: org, Success: true, Errors: []string{}}, nil
}

func (r *Resolver) createProject(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["input"].(map[string]interface{})

	orgID, _ := uintArg(input, "organizationId")
	org, err := r.orgs.GetByID(p.Context, orgID)
	if err != nil {
		return projectPayload{Success: false, Errors: []string{err.Error()}}, nil
	}
	if org == nil {
		return projectPayload{Success: false, Errors: []string{"Organization not found"}}, nil
	}

	status, statusGiven := input["status"].(string)
	if statusGiven && !model.ProjectStatus(status).Valid() {
		return projectPayload{Success: false, Errors: []string{"Invalid status choice"}}, nil
	}
	if !statusGiven {
		status = string(model.ProjectActive)
	}

	project := &model.Project{
		OrganizationID: org.ID,
		Name:           stringArg(input, "name"),
		Description:    stringArg(input, "description"),
		Status:         model.ProjectStatus(status),
	}
	if dueDate, ok := input["dueDate"].(time.Time); ok {
		project.DueDate = &dueDate
	}

	if err := r.projects.Create(p.Context, project); err != nil {
		return projectPayload{Success: false, Errors: []string{err.Error()}}, nil
	}
	return projectPayload{Project: project, Success: true, Errors: []string{}}, nil
}

func (r *Resolver) createTask(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["input"].(map[string]interface{})

	projectID, _ := uintArg(input, "projectId")
	project, err := r.projects.GetByID(p.Context, projectID)
	if err != nil {
		return taskPayload{Success: false, Errors: []string{err.Error()}}, nil
	}
	if project == nil {
		return taskPayload{Success: false, Errors: []string{"Project not found"}}, nil
	}

	var errs []string

	status, statusGiven := input["status"].(string)
	if statusGiven && !model.TaskStatus(status).Valid() {
		errs = append(errs, "Invalid status choice")
	}
	if !statusGiven {
		status = string(model.TaskTodo)
	}

	assigneeEmail := stringArg(input, "assigneeEmail")
	if assigneeEmail != "" && !validate.Email(assigneeEmail) {
		errs = append(errs, "Invalid assignee email format")
	}

	if len(errs) > 0 {
		return taskPayload{Success: false, Errors: errs}, nil
	}

	task := &model.Task{
		ProjectID:     project.ID,
		Title:         stringArg(input, "title"),
		Description:   stringArg(input, "description"),
		Status:        model.TaskStatus(status),
		AssigneeEmail: assigneeEmail,
	}
	if dueDate, ok := input["dueDate"].(time.Time); ok {
		task.DueDate = &dueDate
	}

	if err := r.tasks.Create(p.Context, task); err != nil {
		return taskPayload{Success: false, Errors: []string{err.Error()}}, nil
	}
	return taskPayload{Task: task, Success: true, Errors: []string{}}, nil
}

func (r *Resolver) createTaskComment(p graphql.ResolveParams) (interface{}, error) {
	taskID, _ := uintArg(p.Args, "taskId")
	task, err := r.tasks.GetByID(p.Context, taskID)
	if err != nil {
		return commentPayload{Success: false, Errors: []string{err.Error()}}, nil
	}
	if task == nil {
		return commentPayload{Success: false, Errors: []string{"Task not found"}}, nil
	}

	var errs []string

	authorEmail := stringArg(p.Args, "authorEmail")
	if !validate.Email(authorEmail) {
		errs = append(errs, "Invalid author email format")
	}

	content := strings.TrimSpace(stringArg(p.Args, "content"))
	if content == "" {
		errs = append(errs, "Comment content cannot be empty")
	}

	if len(errs) > 0 {
		return commentPayload{Success: false, Errors: errs}, nil
	}

	comment := &model.TaskComment{
		TaskID:      task.ID,
		Content:     content,
		AuthorEmail: authorEmail,
	}
	if err := r.comments.Create(p.Context, comment); err != nil {
		return commentPayload{Success: false, Errors: []string{err.Error()}}, nil
	}
	return commentPayload{Comment: comment, Success: true, Errors: []string{}}, nil
}

func (r *Resolver) updateProject(p graphql.ResolveParams) (interface{}, error) {
	projectID, _ := uintArg(p.Args, "projectId")
	project, err := r.projects.GetByID(p.Context, projectID)
	if err != nil {
		return projectPayload{Success: false, Errors: []string{err.Error()}}, nil
	}
	if project == nil {
		return projectPayload{Success: false, Errors: []string{"Project not found"}}, nil
	}

	status, statusGiven := p.Args["status"].(string)
	if statusGiven && !model.ProjectStatus(status).Valid() {
		return projectPayload{Success: false, Errors: []string{"Invalid status choice"}}, nil
	}

	// Only supplied fields change; omitted fields keep their values.
	if name, ok := p.Args["name"].(string); ok {
		project.Name = name
	}
	if description, ok := p.Args["description"].(string); ok {
		project.Description = description
	}
	if statusGiven {
		project.Status = model.ProjectStatus(status)
	}
	if dueDate, ok := p.Args["dueDate"].(time.Time); ok {
		project.DueDate = &dueDate
	}

	if err := r.projects.Save(p.Context, project); err != nil {
		return projectPayload{Success: false, Errors: []string{err.Error()}}, nil
	}
	return projectPayload{Project: project, Success: true, Errors: []string{}}, nil
}

func (r *Resolver) updateTask(p graphql.ResolveParams) (interface{}, error) {
	taskID, _ := uintArg(p.Args, "taskId")
	task, err := r.tasks.GetByID(p.Context, taskID)
	if err != nil {
		return taskPayload{Success: false, Errors: []string{err.Error()}}, nil
	}
	if task == nil {
		return taskPayload{Success: false, Errors: []string{"Task not found"}}, nil
	}

	var errs []string

	status, statusGiven := p.Args["status"].(string)
	if statusGiven && !model.TaskStatus(status).Valid() {
		errs = append(errs, "Invalid status choice")
	}

	// An empty assignee email clears the field rather than failing format
	// validation.
	assigneeEmail, assigneeGiven := p.Args["assigneeEmail"].(string)
	if assigneeGiven && assigneeEmail != "" && !validate.Email(assigneeEmail) {
		errs = append(errs, "Invalid assignee email format")
	}

	if len(errs) > 0 {
		return taskPayload{Success: false, Errors: errs}, nil
	}

	if title, ok := p.Args["title"].(string); ok {
		task.Title = title
	}
	if description, ok := p.Args["description"].(string); ok {
		task.Description = description
	}
	if statusGiven {
		task.Status = model.TaskStatus(status)
	}
	if assigneeGiven {
		task.AssigneeEmail = assigneeEmail
	}
	if dueDate, ok := p.Args["dueDate"].(time.Time); ok {
		task.DueDate = &dueDate
	}

	if err := r.tasks.Save(p.Context, task); err != nil {
		return taskPayload{Success: false, Errors: []string{err.Error()}}, nil
	}
	return taskPayload{Task: task, Success: true, Errors: []string{}}, nil
}

func (r *Resolver) deleteProject(p graphql.ResolveParams) (interface{}, error) {
	projectID, _ := uintArg(p.Args, "projectId")
	if err := r.projects.Delete(p.Context, projectID); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return deletePayload{Success: false, Errors: []string{"Project not found"}}, nil
		}
		return deletePayload{Success: false, Errors: []string{err.Error()}}, nil
	}
	return deletePayload{Success: true, Errors: []string{}}, nil
}

func (r *Resolver) deleteTask(p graphql.ResolveParams) (interface{}, error) {
	taskID, _ := uintArg(p.Args, "taskId")
	if err := r.tasks.Delete(p.Context, taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return deletePayload{Success: false, Errors: []string{"Task not found"}}, nil
		}
		return deletePayload{Success: false, Errors: []string{err.Error()}}, nil
	}
	return deletePayload{Success: true, Errors: []string{}}, nil
}

func (r *Resolver) deleteTaskComment(p graphql.ResolveParams) (interface{}, error) {
	commentID, _ := uintArg(p.Args, "commentId")
	if err := r.comments.Delete(p.Context, commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return deletePayload{Success: false, Errors: []string{"Comment not found"}}, nil
		}
		return deletePayload{Success: false, Errors: []string{err.Error()}}, nil
	}
	return deletePayload{Success: true, Errors: []string{}}, nil
}

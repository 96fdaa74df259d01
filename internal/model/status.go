package model

// ProjectStatus is the coded status of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectOnHold    ProjectStatus = "ON_HOLD"
)

// TaskStatus is the coded status of a task.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskDone       TaskStatus = "DONE"
)

// StatusChoice pairs a stored status code with its display label.
type StatusChoice struct {
	Value   string `json:"value"`
	Display string `json:"display"`
}

var ProjectStatusChoices = []StatusChoice{
	{Value: string(ProjectActive), Display: "Active"},
	{Value: string(ProjectCompleted), Display: "Completed"},
	{Value: string(ProjectOnHold), Display: "On Hold"},
}

var TaskStatusChoices = []StatusChoice{
	{Value: string(TaskTodo), Display: "To Do"},
	{Value: string(TaskInProgress), Display: "In Progress"},
	{Value: string(TaskDone), Display: "Done"},
}

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

func (s ProjectStatus) Display() string {
	for _, c := range ProjectStatusChoices {
		if c.Value == string(s) {
			return c.Display
		}
	}
	return string(s)
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskDone:
		return true
	}
	return false
}

func (s TaskStatus) Display() string {
	for _, c := range TaskStatusChoices {
		if c.Value == string(s) {
			return c.Display
		}
	}
	return string(s)
}

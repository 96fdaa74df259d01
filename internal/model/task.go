package model

import (
	"time"
)

type Task struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	ProjectID     uint       `gorm:"not null;index:idx_tasks_project_status" json:"projectId"`
	Title         string     `gorm:"size:200;not null" json:"title"`
	Description   string     `json:"description"`
	Status        TaskStatus `gorm:"size:20;not null;default:TODO;index:idx_tasks_project_status;index:idx_tasks_status_due" json:"status"`
	AssigneeEmail string     `gorm:"size:254;index:idx_tasks_assignee_status" json:"assigneeEmail"`
	DueDate       *time.Time `gorm:"index:idx_tasks_status_due" json:"dueDate"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	Project  Project       `gorm:"foreignKey:ProjectID" json:"-"`
	Comments []TaskComment `gorm:"foreignKey:TaskID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// IsOverdue reports whether the task's due timestamp has passed without the
// task being done.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(now) && t.Status != TaskDone
}

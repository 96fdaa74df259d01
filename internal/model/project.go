package model

import (
	"math"
	"time"
)

type Project struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	OrganizationID uint          `gorm:"not null;index:idx_projects_org_status" json:"organizationId"`
	Name           string        `gorm:"size:200;not null" json:"name"`
	Description    string        `json:"description"`
	Status         ProjectStatus `gorm:"size:20;not null;default:ACTIVE;index:idx_projects_org_status;index:idx_projects_status_due" json:"status"`
	DueDate        *time.Time    `gorm:"type:date;index:idx_projects_status_due" json:"dueDate"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	Tasks        []Task       `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// IsOverdue reports whether the project's due date has passed without the
// project being completed. Due dates are calendar dates, so the comparison
// is against the start of the current day.
func (p *Project) IsOverdue(now time.Time) bool {
	if p.DueDate == nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return p.DueDate.Before(today) && p.Status != ProjectCompleted
}

// CompletionPercentage returns done/total as a percentage rounded to one
// decimal place, or 0 when there are no tasks.
func CompletionPercentage(done, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(done)/float64(total)*1000) / 10
}

package model

import (
	"time"
)

type TaskComment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TaskID      uint      `gorm:"not null;index:idx_comments_task_ts" json:"taskId"`
	Content     string    `gorm:"not null" json:"content"`
	AuthorEmail string    `gorm:"size:254;not null;index:idx_comments_author_ts" json:"authorEmail"`
	Timestamp   time.Time `gorm:"autoCreateTime;index:idx_comments_task_ts" json:"timestamp"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Task Task `gorm:"foreignKey:TaskID" json:"-"`
}

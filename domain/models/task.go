package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// ValidTaskStatus reports whether s is a status the store can persist.
// The accepted set is deliberately identical to the stored enum so the
// validators never admit a value the entity cannot hold.
func ValidTaskStatus(s string) bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

type Task struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"size:1000"`
	Status      string    `gorm:"size:20;not null;default:'pending'"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with integer primary keys
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LifecycleState is the soft-delete state of a record. Rows are never physically removed.
type LifecycleState string

const (
	StateActive  LifecycleState = "active"
	StateDeleted LifecycleState = "deleted"
)

// IsValid checks if the LifecycleState is valid
func (s LifecycleState) IsValid() bool {
	switch s {
	case StateActive, StateDeleted:
		return true
	}
	return false
}

// Lifecycle is embedded by every soft-deletable record
type Lifecycle struct {
	State LifecycleState `json:"state" gorm:"size:16;not null;default:active;index"`
}

// BeforeCreate sets the state to active if not already set
func (l *Lifecycle) BeforeCreate(tx *gorm.DB) error {
	if l.State == "" {
		l.State = StateActive
	}
	return nil
}

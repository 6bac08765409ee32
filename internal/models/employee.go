package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EmployeeStatusActive     = "active"
	EmployeeStatusTerminated = "terminated"
)

// Employee is a staff record used only for headcount.
type Employee struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Status       string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	HiredAt      time.Time  `gorm:"not null" json:"hired_at"`
	TerminatedAt *time.Time `json:"terminated_at,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}

// BeforeCreate hook for Employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Status == "" {
		e.Status = EmployeeStatusActive
	}
	return nil
}

package probation

import (
	"time"

	"github.com/google/uuid"
)

const StatusScheduled = "scheduled"

// Task is one probation check-in scheduled when an employee is activated.
type Task struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID `gorm:"type:uuid;index"`
	EmployeeID    uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_probation_checkin_type"`
	CheckinType   string    `gorm:"type:varchar(20);uniqueIndex:uq_probation_checkin_type"`
	Name          string    `gorm:"not null"`
	ScheduledDate time.Time `gorm:"type:date;not null"`
	Status        string    `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Task) TableName() string {
	return "probation_checkin_tasks"
}

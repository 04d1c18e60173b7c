package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee is the slice of the employee profile that onboarding reads.
// The table is owned by the employee service.
type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;index"`
	FullName  string
	Email     string
	HireDate  *time.Time `gorm:"type:date"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Employee) TableName() string {
	return "employees"
}

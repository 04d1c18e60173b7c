package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WorkflowTemplate is a stored, versioned catalog. CompanyID nil means the
// template applies to every company without one of its own.
type WorkflowTemplate struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID   *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"not null"`
	Description string
	PhaseConfig datatypes.JSON `gorm:"type:jsonb;not null"`
	Version     int            `gorm:"not null;default:1"`
	IsDefault   bool           `gorm:"not null;default:false"`
	IsActive    bool           `gorm:"not null;default:true"`
	CreatedBy   *uuid.UUID     `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (WorkflowTemplate) TableName() string {
	return "onboarding_workflows"
}

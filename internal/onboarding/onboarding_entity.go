package onboarding

import (
	"time"

	"github.com/google/uuid"
)

type EmploymentStatus string

const (
	StatusNewHire    EmploymentStatus = "new_hire"
	StatusOnboarding EmploymentStatus = "onboarding"
	StatusActive     EmploymentStatus = "active"
	StatusExiting    EmploymentStatus = "exiting"
	StatusTerminated EmploymentStatus = "terminated"
)

type OverallStatus string

const (
	OverallPending    OverallStatus = "pending"
	OverallInProgress OverallStatus = "in_progress"
	OverallBlocked    OverallStatus = "blocked"
	OverallCompleted  OverallStatus = "completed"
)

func (s OverallStatus) Valid() bool {
	switch s {
	case OverallPending, OverallInProgress, OverallBlocked, OverallCompleted:
		return true
	}
	return false
}

type DocumentStatus string

const (
	DocPending      DocumentStatus = "pending"
	DocUploaded     DocumentStatus = "uploaded"
	DocVerified     DocumentStatus = "verified"
	DocRejected     DocumentStatus = "rejected"
	DocSigned       DocumentStatus = "signed"
	DocAcknowledged DocumentStatus = "acknowledged"
)

// Record is the per-employee onboarding state. CurrentPhase, OverallStatus and
// ProfileCompletionPercentage are derived from the documents by Recompute.
type Record struct {
	ID                          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CompanyID                   uuid.UUID        `gorm:"type:uuid;index"`
	EmployeeID                  uuid.UUID        `gorm:"type:uuid;uniqueIndex:uq_employee_onboarding_employee"`
	WorkflowID                  *uuid.UUID       `gorm:"type:uuid"`
	EmploymentStatus            EmploymentStatus `gorm:"type:varchar(20);not null"`
	CurrentPhase                int              `gorm:"not null;default:1"`
	OverallStatus               OverallStatus    `gorm:"type:varchar(20);not null"`
	EmployeeFileComplete        bool             `gorm:"not null;default:false"`
	FileCompletedBy             *uuid.UUID       `gorm:"type:uuid"`
	FileCompletedAt             *time.Time
	ProfileCompletionPercentage int `gorm:"not null;default:0"`
	StartedAt                   *time.Time
	CompletedAt                 *time.Time
	Version                     int `gorm:"not null;default:1"`
	CreatedAt                   time.Time
	UpdatedAt                   time.Time
}

func (Record) TableName() string {
	return "employee_onboarding"
}

type Document struct {
	ID                     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyID              uuid.UUID      `gorm:"type:uuid;index"`
	EmployeeID             uuid.UUID      `gorm:"type:uuid;uniqueIndex:uq_onboarding_document_type"`
	OnboardingID           uuid.UUID      `gorm:"type:uuid;index"`
	DocumentType           string         `gorm:"type:varchar(100);uniqueIndex:uq_onboarding_document_type"`
	Title                  string         `gorm:"not null"`
	Phase                  int            `gorm:"not null"`
	SortOrder              int            `gorm:"not null;default:0"`
	RequiresUpload         bool           `gorm:"not null;default:false"`
	RequiresSignature      bool           `gorm:"not null;default:false"`
	RequiresAcknowledgment bool           `gorm:"not null;default:false"`
	IsRequired             bool           `gorm:"not null;default:true"`
	Status                 DocumentStatus `gorm:"type:varchar(20);not null"`
	DueDate                *time.Time     `gorm:"type:date"`
	FileReference          *string
	RejectionReason        *string
	VerifiedBy             *uuid.UUID `gorm:"type:uuid"`
	VerifiedAt             *time.Time
	UploadedAt             *time.Time
	SignedAt               *time.Time
	AcknowledgedAt         *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (Document) TableName() string {
	return "onboarding_documents"
}

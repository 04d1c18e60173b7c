package onboarding

import (
	"time"

	"github.com/google/uuid"
)

type StartOnboardingRequest struct {
	WorkflowID string `json:"workflow_id" binding:"omitempty,uuid"`
}

type RejectDocumentRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

type UploadDocumentRequest struct {
	FileReference string `json:"file_reference" binding:"required,max=1024"`
}

type BulkAssignRequest struct {
	EmployeeIDs   []string `json:"employee_ids" binding:"required,min=1,max=500"`
	DocumentTypes []string `json:"document_types" binding:"required,min=1"`
	DueDays       int      `json:"due_days" binding:"min=0,max=365"`
	IsRequired    *bool    `json:"is_required"`
}

type BulkStartRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"required,min=1,max=500"`
	WorkflowID  string   `json:"workflow_id" binding:"omitempty,uuid"`
}

type RecordResponse struct {
	ID                          string     `json:"id"`
	CompanyID                   string     `json:"company_id"`
	EmployeeID                  string     `json:"employee_id"`
	EmployeeName                string     `json:"employee_name,omitempty"`
	WorkflowID                  *string    `json:"workflow_id,omitempty"`
	EmploymentStatus            string     `json:"employment_status"`
	CurrentPhase                int        `json:"current_phase"`
	OverallStatus               string     `json:"overall_status"`
	EmployeeFileComplete        bool       `json:"employee_file_complete"`
	FileCompletedBy             *string    `json:"file_completed_by,omitempty"`
	FileCompletedAt             *time.Time `json:"file_completed_at,omitempty"`
	ProfileCompletionPercentage int        `json:"profile_completion_percentage"`
	StartedAt                   *time.Time `json:"started_at,omitempty"`
	CompletedAt                 *time.Time `json:"completed_at,omitempty"`
	Version                     int        `json:"version"`
	CreatedAt                   time.Time  `json:"created_at"`
	UpdatedAt                   time.Time  `json:"updated_at"`
}

type DocumentResponse struct {
	ID                     string     `json:"id"`
	EmployeeID             string     `json:"employee_id"`
	DocumentType           string     `json:"document_type"`
	Title                  string     `json:"title"`
	Phase                  int        `json:"phase"`
	SortOrder              int        `json:"sort_order"`
	RequiresUpload         bool       `json:"requires_upload"`
	RequiresSignature      bool       `json:"requires_signature"`
	RequiresAcknowledgment bool       `json:"requires_acknowledgment"`
	IsRequired             bool       `json:"is_required"`
	Status                 string     `json:"status"`
	Satisfied              bool       `json:"satisfied"`
	DueDate                *string    `json:"due_date,omitempty"`
	FileReference          *string    `json:"file_reference,omitempty"`
	RejectionReason        *string    `json:"rejection_reason,omitempty"`
	VerifiedBy             *string    `json:"verified_by,omitempty"`
	VerifiedAt             *time.Time `json:"verified_at,omitempty"`
	UploadedAt             *time.Time `json:"uploaded_at,omitempty"`
	SignedAt               *time.Time `json:"signed_at,omitempty"`
	AcknowledgedAt         *time.Time `json:"acknowledged_at,omitempty"`
}

type PhaseView struct {
	PhaseSummary
	Name      string             `json:"name,omitempty"`
	Documents []DocumentResponse `json:"documents"`
}

type EmployeeSummary struct {
	ID       string     `json:"id"`
	FullName string     `json:"full_name"`
	Email    string     `json:"email,omitempty"`
	HireDate *time.Time `json:"hire_date,omitempty"`
}

type StatusResponse struct {
	Onboarding RecordResponse  `json:"onboarding"`
	Employee   EmployeeSummary `json:"employee"`
	Phases     []PhaseView     `json:"phases"`
	HardGates  GateResult      `json:"hard_gates"`
}

type DocumentTransitionResponse struct {
	Document   DocumentResponse `json:"document"`
	Onboarding RecordResponse   `json:"onboarding"`
}

type ActivationResponse struct {
	Onboarding        RecordResponse `json:"onboarding"`
	ProbationCheckIns int            `json:"probation_checkins_scheduled"`
}

type RefreshResponse struct {
	DocumentsCreated int `json:"documents_created"`
}

func mapToRecordResponse(rec Record, employeeName string) RecordResponse {
	return RecordResponse{
		ID:                          rec.ID.String(),
		CompanyID:                   rec.CompanyID.String(),
		EmployeeID:                  rec.EmployeeID.String(),
		EmployeeName:                employeeName,
		WorkflowID:                  uuidPtrString(rec.WorkflowID),
		EmploymentStatus:            string(rec.EmploymentStatus),
		CurrentPhase:                rec.CurrentPhase,
		OverallStatus:               string(rec.OverallStatus),
		EmployeeFileComplete:        rec.EmployeeFileComplete,
		FileCompletedBy:             uuidPtrString(rec.FileCompletedBy),
		FileCompletedAt:             rec.FileCompletedAt,
		ProfileCompletionPercentage: rec.ProfileCompletionPercentage,
		StartedAt:                   rec.StartedAt,
		CompletedAt:                 rec.CompletedAt,
		Version:                     rec.Version,
		CreatedAt:                   rec.CreatedAt,
		UpdatedAt:                   rec.UpdatedAt,
	}
}

func mapToDocumentResponse(d Document) DocumentResponse {
	resp := DocumentResponse{
		ID:                     d.ID.String(),
		EmployeeID:             d.EmployeeID.String(),
		DocumentType:           d.DocumentType,
		Title:                  d.Title,
		Phase:                  d.Phase,
		SortOrder:              d.SortOrder,
		RequiresUpload:         d.RequiresUpload,
		RequiresSignature:      d.RequiresSignature,
		RequiresAcknowledgment: d.RequiresAcknowledgment,
		IsRequired:             d.IsRequired,
		Status:                 string(d.Status),
		Satisfied:              IsSatisfied(d),
		FileReference:          d.FileReference,
		RejectionReason:        d.RejectionReason,
		VerifiedBy:             uuidPtrString(d.VerifiedBy),
		VerifiedAt:             d.VerifiedAt,
		UploadedAt:             d.UploadedAt,
		SignedAt:               d.SignedAt,
		AcknowledgedAt:         d.AcknowledgedAt,
	}
	if d.DueDate != nil {
		due := d.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	return resp
}

func uuidPtrString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

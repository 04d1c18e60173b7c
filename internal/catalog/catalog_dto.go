package catalog

import (
	"encoding/json"
	"time"
)

type CreateWorkflowRequest struct {
	Name        string  `json:"name" binding:"required,max=150"`
	Description string  `json:"description"`
	Phases      []Phase `json:"phases" binding:"required,min=1"`
	IsDefault   bool    `json:"is_default"`
}

type UpdateWorkflowRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=150"`
	Description *string `json:"description"`
	Phases      []Phase `json:"phases"`
	IsDefault   *bool   `json:"is_default"`
	IsActive    *bool   `json:"is_active"`
}

type WorkflowResponse struct {
	ID          string    `json:"id"`
	CompanyID   *string   `json:"company_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Version     int       `json:"version"`
	IsDefault   bool      `json:"is_default"`
	IsActive    bool      `json:"is_active"`
	Shared      bool      `json:"shared"`
	Phases      []Phase   `json:"phases"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func mapToWorkflowResponse(tpl WorkflowTemplate) WorkflowResponse {
	var companyID *string
	if tpl.CompanyID != nil {
		s := tpl.CompanyID.String()
		companyID = &s
	}

	var phases []Phase
	_ = json.Unmarshal(tpl.PhaseConfig, &phases)

	return WorkflowResponse{
		ID:          tpl.ID.String(),
		CompanyID:   companyID,
		Name:        tpl.Name,
		Description: tpl.Description,
		Version:     tpl.Version,
		IsDefault:   tpl.IsDefault,
		IsActive:    tpl.IsActive,
		Shared:      tpl.CompanyID == nil,
		Phases:      phases,
		CreatedAt:   tpl.CreatedAt,
		UpdatedAt:   tpl.UpdatedAt,
	}
}

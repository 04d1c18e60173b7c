package catalogerrors

import (
	"net/http"

	"hris-onboarding/internal/shared/apperror"
)

var (
	ErrWorkflowNotFound = apperror.New(
		apperror.CodeNotFound,
		"Onboarding workflow not found",
		http.StatusNotFound,
	)
	ErrWorkflowInactive = apperror.New(
		apperror.CodePreconditionFailed,
		"Onboarding workflow is not active",
		http.StatusPreconditionFailed,
	)
	ErrInvalidWorkflowID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid workflow ID",
		http.StatusBadRequest,
	)
	ErrInvalidPhaseConfig = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid phase configuration",
		http.StatusBadRequest,
	)
	ErrWorkflowNameExists = apperror.New(
		apperror.CodeConflict,
		"A workflow with the same name already exists",
		http.StatusConflict,
	)
	ErrGlobalWorkflowReadOnly = apperror.New(
		apperror.CodeForbidden,
		"Shared workflows cannot be modified by a company",
		http.StatusForbidden,
	)
)

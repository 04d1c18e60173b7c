package onboardingerrors

import (
	"net/http"

	"hris-onboarding/internal/shared/apperror"
)

var (
	ErrOnboardingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Onboarding record not found",
		http.StatusNotFound,
	)
	ErrDocumentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Onboarding document not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDocumentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid document ID",
		http.StatusBadRequest,
	)
	ErrAlreadyStarted = apperror.New(
		apperror.CodeConflict,
		"Onboarding has already been started for this employee",
		http.StatusConflict,
	)
	ErrAlreadyActive = apperror.New(
		apperror.CodeConflict,
		"Employee is already active",
		http.StatusConflict,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidTransition,
		"Transition is not allowed from the current state",
		http.StatusConflict,
	)
	ErrNotOnboarding = apperror.New(
		apperror.CodePreconditionFailed,
		"Employee is not in onboarding",
		http.StatusPreconditionFailed,
	)
	ErrPhaseOneIncomplete = apperror.New(
		apperror.CodePreconditionFailed,
		"Phase 1 documents must be completed first",
		http.StatusPreconditionFailed,
	)
	ErrGateBlocked = apperror.New(
		apperror.CodeGateBlocked,
		"Activation is blocked by unmet requirements",
		http.StatusUnprocessableEntity,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Rejection reason is required",
		http.StatusBadRequest,
	)
	ErrActorRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Reviewer identity is required",
		http.StatusBadRequest,
	)
	ErrConcurrentModification = apperror.New(
		apperror.CodeConflict,
		"Onboarding record was modified concurrently, please retry",
		http.StatusConflict,
	)
	ErrUnknownDocumentType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown document type",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid status filter",
		http.StatusBadRequest,
	)
	ErrInvalidPhaseFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid phase filter",
		http.StatusBadRequest,
	)
	ErrBlankEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Employee ID must not be blank",
		http.StatusBadRequest,
	)
)

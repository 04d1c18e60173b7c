package events

import "time"

const OnboardingLifecycleTopic = "hr.onboarding.lifecycle.v1"

const (
	EventOnboardingStarted          = "onboarding_started"
	EventOnboardingDocumentRejected = "onboarding_document_rejected"
	EventEmployeeActivated          = "employee_activated"
)

// OnboardingEvent is the payload of every event on OnboardingLifecycleTopic.
// Optional fields are set only for the event types that use them.
type OnboardingEvent struct {
	EventType    string    `json:"event_type"`
	CompanyID    string    `json:"company_id"`
	EmployeeID   string    `json:"employee_id"`
	OnboardingID string    `json:"onboarding_id"`
	ActorID      string    `json:"actor_id,omitempty"`
	DocumentID   string    `json:"document_id,omitempty"`
	DocumentType string    `json:"document_type,omitempty"`
	Reason       string    `json:"reason,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

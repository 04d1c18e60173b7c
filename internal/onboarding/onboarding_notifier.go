package onboarding

import (
	"context"

	"go.uber.org/zap"

	"hris-onboarding/internal/events"
	"hris-onboarding/internal/messaging/kafka"
	"hris-onboarding/internal/shared/audit"
	"hris-onboarding/internal/shared/contextutil"
)

// Notifier is called after commit. Implementations handle their own failures.
//
//go:generate mockgen -source=onboarding_notifier.go -destination=mock/notifier_mock.go -package=mock
type Notifier interface {
	OnboardingStarted(ctx context.Context, rec Record, actorID string)
	DocumentRejected(ctx context.Context, rec Record, doc Document, actorID string)
	EmployeeActivated(ctx context.Context, rec Record, actorID string)
}

// EventWriter stores outbox rows. kafka.OutboxRepository satisfies it.
type EventWriter interface {
	Create(ctx context.Context, event kafka.OutboxEvent) error
}

const aggregateType = "employee_onboarding"

type outboxNotifier struct {
	outbox EventWriter
	audit  audit.Logger
	logger *zap.Logger
}

// NewNotifier publishes lifecycle events through the outbox and records audit
// entries. Either sink may be nil.
func NewNotifier(outbox EventWriter, auditLogger audit.Logger, logger ...*zap.Logger) Notifier {
	l := zap.L().Named("onboarding.notifier")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.notifier")
	}
	return &outboxNotifier{outbox: outbox, audit: auditLogger, logger: l}
}

func (n *outboxNotifier) OnboardingStarted(ctx context.Context, rec Record, actorID string) {
	n.publish(ctx, newEvent(events.EventOnboardingStarted, rec, actorID))
	n.record(ctx, audit.Entry{
		Action:    "ONBOARDING_STARTED",
		Message:   "onboarding started",
		CompanyID: rec.CompanyID.String(),
		ActorID:   actorID,
		Meta:      map[string]any{"employee_id": rec.EmployeeID.String(), "onboarding_id": rec.ID.String()},
	})
}

func (n *outboxNotifier) DocumentRejected(ctx context.Context, rec Record, doc Document, actorID string) {
	evt := newEvent(events.EventOnboardingDocumentRejected, rec, actorID)
	evt.DocumentID = doc.ID.String()
	evt.DocumentType = doc.DocumentType
	if doc.RejectionReason != nil {
		evt.Reason = *doc.RejectionReason
	}
	n.publish(ctx, evt)
	n.record(ctx, audit.Entry{
		Action:    "ONBOARDING_DOCUMENT_REJECTED",
		Message:   "onboarding document rejected",
		CompanyID: rec.CompanyID.String(),
		ActorID:   actorID,
		Meta: map[string]any{
			"employee_id":   rec.EmployeeID.String(),
			"document_id":   evt.DocumentID,
			"document_type": evt.DocumentType,
			"reason":        evt.Reason,
		},
	})
}

func (n *outboxNotifier) EmployeeActivated(ctx context.Context, rec Record, actorID string) {
	n.publish(ctx, newEvent(events.EventEmployeeActivated, rec, actorID))
	n.record(ctx, audit.Entry{
		Action:    "EMPLOYEE_ACTIVATED",
		Message:   "employee activated after onboarding",
		CompanyID: rec.CompanyID.String(),
		ActorID:   actorID,
		Meta:      map[string]any{"employee_id": rec.EmployeeID.String(), "onboarding_id": rec.ID.String()},
	})
}

func newEvent(eventType string, rec Record, actorID string) events.OnboardingEvent {
	occurred := rec.UpdatedAt
	if occurred.IsZero() {
		occurred = rec.CreatedAt
	}
	return events.OnboardingEvent{
		EventType:    eventType,
		CompanyID:    rec.CompanyID.String(),
		EmployeeID:   rec.EmployeeID.String(),
		OnboardingID: rec.ID.String(),
		ActorID:      actorID,
		OccurredAt:   occurred,
	}
}

func (n *outboxNotifier) publish(ctx context.Context, evt events.OnboardingEvent) {
	if n.outbox == nil {
		return
	}
	rid := contextutil.GetRequestID(ctx)

	outboxEvent, err := kafka.NewOutboxEvent(rid, aggregateType, evt.OnboardingID, evt.EventType, events.OnboardingLifecycleTopic, evt)
	if err == nil {
		err = n.outbox.Create(ctx, outboxEvent)
	}
	if err != nil {
		n.logger.Error("enqueue onboarding event failed",
			zap.String("request_id", rid),
			zap.String("event_type", evt.EventType),
			zap.String("employee_id", evt.EmployeeID),
			zap.Error(err),
		)
		return
	}
	n.logger.Debug("onboarding event enqueued",
		zap.String("request_id", rid),
		zap.String("event_type", evt.EventType),
		zap.String("outbox_id", outboxEvent.ID),
	)
}

func (n *outboxNotifier) record(ctx context.Context, entry audit.Entry) {
	if n.audit != nil {
		n.audit.Log(ctx, entry)
	}
}

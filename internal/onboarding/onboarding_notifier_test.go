package onboarding_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"hris-onboarding/internal/events"
	"hris-onboarding/internal/messaging/kafka"
	"hris-onboarding/internal/onboarding"
	"hris-onboarding/internal/onboarding/mock"
	"hris-onboarding/internal/shared/audit"
	"hris-onboarding/internal/shared/contextutil"
)

type recordingAudit struct {
	entries []audit.Entry
}

func (r *recordingAudit) Log(ctx context.Context, entry audit.Entry) {
	r.entries = append(r.entries, entry)
}

func sampleRecord() onboarding.Record {
	return onboarding.Record{
		ID:         uuid.New(),
		CompanyID:  uuid.New(),
		EmployeeID: uuid.New(),
		UpdatedAt:  time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestNotifier_DocumentRejectedEnqueuesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := mock.NewMockEventWriter(ctrl)
	auditLog := &recordingAudit{}
	n := onboarding.NewNotifier(outbox, auditLog, zap.NewNop())

	rec := sampleRecord()
	reason := "expired passport"
	doc := onboarding.Document{ID: uuid.New(), DocumentType: "id_card", RejectionReason: &reason}
	ctx := contextutil.WithRequestID(context.Background(), "req-1")

	outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, events.OnboardingLifecycleTopic, e.Topic)
			assert.Equal(t, events.EventOnboardingDocumentRejected, e.EventType)
			assert.Equal(t, rec.ID.String(), e.AggregateID)
			assert.Equal(t, "req-1", e.RequestID)

			var payload events.OnboardingEvent
			assert.NoError(t, json.Unmarshal(e.Payload, &payload))
			assert.Equal(t, doc.ID.String(), payload.DocumentID)
			assert.Equal(t, reason, payload.Reason)
			assert.Equal(t, rec.UpdatedAt, payload.OccurredAt)
			return nil
		})

	n.DocumentRejected(ctx, rec, doc, "admin-1")

	assert.Len(t, auditLog.entries, 1)
	assert.Equal(t, "ONBOARDING_DOCUMENT_REJECTED", auditLog.entries[0].Action)
	assert.Equal(t, "admin-1", auditLog.entries[0].ActorID)
}

func TestNotifier_FailuresAreLoggedNotReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := mock.NewMockEventWriter(ctrl)
	core, logs := observer.New(zap.ErrorLevel)
	auditLog := &recordingAudit{}
	n := onboarding.NewNotifier(outbox, auditLog, zap.New(core))

	outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	n.EmployeeActivated(context.Background(), sampleRecord(), "admin-1")

	assert.Equal(t, 1, logs.FilterMessage("enqueue onboarding event failed").Len())
	assert.Len(t, auditLog.entries, 1)
	assert.Equal(t, "EMPLOYEE_ACTIVATED", auditLog.entries[0].Action)
}

func TestNotifier_NilSinks(t *testing.T) {
	n := onboarding.NewNotifier(nil, nil, zap.NewNop())

	assert.NotPanics(t, func() {
		n.OnboardingStarted(context.Background(), sampleRecord(), "admin-1")
	})
}

package producer

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"hris-onboarding/internal/messaging/kafka"
)

type fakeOutbox struct {
	pending []kafka.OutboxEvent
	sent    []string
	failed  map[string]string
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.pending = append(f.pending, event)
	return nil
}

func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return f.pending, nil
}

func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error {
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error {
	if f.failed == nil {
		f.failed = map[string]string{}
	}
	f.failed[id] = reason
	return nil
}

type fakeWriter struct {
	failTopic string
	written   []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == w.failTopic {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	repo := &fakeOutbox{pending: []kafka.OutboxEvent{
		{ID: "evt-1", Topic: "hr.onboarding.lifecycle.v1", AggregateID: "onb-1", EventType: "onboarding_started", Payload: []byte(`{}`)},
		{ID: "evt-2", Topic: "broken", AggregateID: "onb-2", EventType: "employee_activated", Payload: []byte(`{}`)},
	}}
	writer := &fakeWriter{failTopic: "broken"}

	sent, err := processPendingEvents(context.Background(), repo, writer, zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, []string{"evt-1"}, repo.sent)
	assert.Contains(t, repo.failed, "evt-2")
	assert.Len(t, writer.written, 1)
	assert.Equal(t, []byte("onb-1"), writer.written[0].Key)
}

func TestProcessPendingEvents_Empty(t *testing.T) {
	sent, err := processPendingEvents(context.Background(), &fakeOutbox{}, &fakeWriter{}, zap.NewNop())
	assert.NoError(t, err)
	assert.Zero(t, sent)
}

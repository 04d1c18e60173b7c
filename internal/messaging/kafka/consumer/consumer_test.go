package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	employeeerrors "hris-onboarding/internal/employee/errors"
	"hris-onboarding/internal/events"
	"hris-onboarding/internal/onboarding"
	onboardingerrors "hris-onboarding/internal/onboarding/errors"
	"hris-onboarding/internal/shared/contextutil"
)

type fakeReader struct {
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(f.msgs) == 0 {
		f.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := f.msgs[0]
	f.msgs = f.msgs[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	return nil
}

type fakeStarter struct {
	results    map[string]error
	started    []string
	requestIDs []string
}

func (f *fakeStarter) StartOnboarding(ctx context.Context, companyID, employeeID, workflowID, actorID string) (onboarding.RecordResponse, error) {
	f.started = append(f.started, employeeID)
	f.requestIDs = append(f.requestIDs, contextutil.GetRequestID(ctx))
	return onboarding.RecordResponse{EmployeeID: employeeID}, f.results[employeeID]
}

func createdMessage(t *testing.T, offset int64, employeeID string) kafkago.Message {
	t.Helper()
	raw, err := json.Marshal(events.EmployeeCreatedEvent{
		EventType:  events.EventEmployeeCreated,
		EmployeeID: employeeID,
		CompanyID:  "company-1",
	})
	assert.NoError(t, err)
	return kafkago.Message{
		Offset:  offset,
		Value:   raw,
		Headers: []kafkago.Header{{Key: "request_id", Value: []byte("req-" + employeeID)}},
	}
}

func TestConsumeEmployeeLifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{cancel: cancel, msgs: []kafkago.Message{
		createdMessage(t, 1, "emp-new"),
		createdMessage(t, 2, "emp-dup"),
		{Offset: 3, Value: []byte("not json")},
		createdMessage(t, 4, "emp-flaky"),
		createdMessage(t, 5, "emp-gone"),
		{Offset: 6, Value: []byte(`{"event_type":"employee_updated","employee_id":"emp-x"}`)},
	}}
	starter := &fakeStarter{results: map[string]error{
		"emp-dup":   onboardingerrors.ErrAlreadyStarted,
		"emp-flaky": errors.New("connection reset"),
		"emp-gone":  employeeerrors.ErrEmployeeNotFound,
	}}

	ConsumeEmployeeLifecycle(ctx, reader, starter, zap.NewNop())

	assert.Equal(t, []string{"emp-new", "emp-dup", "emp-flaky", "emp-gone"}, starter.started)
	assert.Equal(t, "req-emp-new", starter.requestIDs[0])
	assert.Equal(t, []int64{1, 2, 3, 5, 6}, reader.committed)
}

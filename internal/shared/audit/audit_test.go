package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"hris-onboarding/internal/shared/contextutil"
)

func TestLog_WritesStructuredEntry(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "req-9")
	l.Log(ctx, Entry{
		Action:    "EMPLOYEE_ACTIVATED",
		Message:   "employee activated",
		CompanyID: "company-1",
		ActorID:   "admin-1",
		Meta:      map[string]any{"employee_id": "emp-1"},
	})

	assert.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "EMPLOYEE_ACTIVATED", fields["action"])
	assert.Equal(t, "req-9", fields["request_id"])
	assert.Equal(t, "company-1", fields["company_id"])
}

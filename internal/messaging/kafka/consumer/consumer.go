package consumer

import (
	"context"
	"encoding/json"
	"errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	employeeerrors "hris-onboarding/internal/employee/errors"
	"hris-onboarding/internal/events"
	"hris-onboarding/internal/onboarding"
	onboardingerrors "hris-onboarding/internal/onboarding/errors"
	"hris-onboarding/internal/shared/contextutil"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// OnboardingStarter is the part of onboarding.Service the consumer needs.
type OnboardingStarter interface {
	StartOnboarding(ctx context.Context, companyID, employeeID, workflowID, actorID string) (onboarding.RecordResponse, error)
}

// ConsumeEmployeeLifecycle starts onboarding for every employee_created event
// until ctx is cancelled.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	starter OnboardingStarter,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		if !handleEmployeeCreated(ctx, msg, starter, log) {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
		}
	}
}

// handleEmployeeCreated reports whether msg is done and may be committed.
// Retryable failures leave it uncommitted.
func handleEmployeeCreated(ctx context.Context, msg kafkago.Message, starter OnboardingStarter, log *zap.Logger) bool {
	var event events.EmployeeCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode employee lifecycle event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		return true
	}
	if event.EventType != events.EventEmployeeCreated {
		return true
	}

	ctx = contextutil.WithRequestID(ctx, headerValue(msg, "request_id"))
	ctx = contextutil.WithCompanyID(ctx, event.CompanyID)

	_, err := starter.StartOnboarding(ctx, event.CompanyID, event.EmployeeID, "", "")
	switch {
	case err == nil:
		log.Info("onboarding started from employee_created event",
			zap.String("employee_id", event.EmployeeID),
			zap.String("company_id", event.CompanyID),
		)
		return true
	case errors.Is(err, onboardingerrors.ErrAlreadyStarted),
		errors.Is(err, onboardingerrors.ErrInvalidEmployeeID),
		errors.Is(err, employeeerrors.ErrEmployeeNotFound):
		log.Warn("employee_created event skipped",
			zap.String("employee_id", event.EmployeeID),
			zap.String("company_id", event.CompanyID),
			zap.String("reason", err.Error()),
		)
		return true
	default:
		log.Error("start onboarding from event failed",
			zap.String("employee_id", event.EmployeeID),
			zap.String("company_id", event.CompanyID),
			zap.Error(err),
		)
		return false
	}
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hris-onboarding/internal/shared/contextutil"
)

type Entry struct {
	Action    string
	Message   string
	CompanyID string
	ActorID   string
	Meta      map[string]any
}

type Logger interface {
	Log(ctx context.Context, entry Entry)
}

type zapLogger struct {
	logger *zap.Logger
}

func NewLogger(logger ...*zap.Logger) Logger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &zapLogger{logger: l}
}

func (l *zapLogger) Log(ctx context.Context, entry Entry) {
	l.logger.Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.String("company_id", entry.CompanyID),
		zap.String("actor_id", entry.ActorID),
		zap.Any("meta", entry.Meta),
	)
}

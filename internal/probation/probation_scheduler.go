package probation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hris-onboarding/internal/shared/contextutil"
)

var DefaultCheckinDays = []int{30, 60, 90}

type Scheduler struct {
	repo   Repository
	days   []int
	now    func() time.Time
	logger *zap.Logger
}

func NewScheduler(repo Repository, days []int, logger ...*zap.Logger) *Scheduler {
	l := zap.L().Named("probation.scheduler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("probation.scheduler")
	}
	if len(days) == 0 {
		days = DefaultCheckinDays
	}
	return &Scheduler{
		repo:   repo,
		days:   days,
		now:    func() time.Time { return time.Now().UTC() },
		logger: l,
	}
}

// Schedule creates the check-ins for an employee inside tx. Running it again for
// the same employee creates nothing.
func (s *Scheduler) Schedule(ctx context.Context, tx *sql.Tx, companyID, employeeID string, hireDate time.Time) (int, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return 0, fmt.Errorf("parse company id: %w", err)
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return 0, fmt.Errorf("parse employee id: %w", err)
	}

	tasks := BuildTasks(companyUUID, employeeUUID, hireDate, s.days, s.now())

	created, err := s.repo.WithTx(tx).CreateTasks(ctx, tasks)
	if err != nil {
		s.logger.Error("schedule probation check-ins failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return 0, err
	}

	s.logger.Info("probation check-ins scheduled",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", employeeID),
		zap.Int("created", created),
	)
	return created, nil
}

// BuildTasks returns one task per offset, dated from the hire date.
func BuildTasks(companyID, employeeID uuid.UUID, hireDate time.Time, days []int, now time.Time) []Task {
	base := time.Date(hireDate.Year(), hireDate.Month(), hireDate.Day(), 0, 0, 0, 0, time.UTC)

	tasks := make([]Task, 0, len(days))
	for _, d := range days {
		tasks = append(tasks, Task{
			ID:            uuid.New(),
			CompanyID:     companyID,
			EmployeeID:    employeeID,
			CheckinType:   fmt.Sprintf("%d_day", d),
			Name:          fmt.Sprintf("%d-day probation check-in", d),
			ScheduledDate: base.AddDate(0, 0, d),
			Status:        StatusScheduled,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return tasks
}

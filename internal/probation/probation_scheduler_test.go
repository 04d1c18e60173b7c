package probation

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRepo struct {
	existing map[string]bool
	saved    []Task
	err      error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeRepo) CreateTasks(ctx context.Context, tasks []Task) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	created := 0
	for _, task := range tasks {
		key := task.EmployeeID.String() + task.CheckinType
		if f.existing[key] {
			continue
		}
		f.existing[key] = true
		f.saved = append(f.saved, task)
		created++
	}
	return created, nil
}

func TestBuildTasks(t *testing.T) {
	hire := time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC)

	tasks := BuildTasks(uuid.New(), uuid.New(), hire, []int{30, 60, 90}, hire)

	assert.Len(t, tasks, 3)
	assert.Equal(t, "30_day", tasks[0].CheckinType)
	assert.Equal(t, "30-day probation check-in", tasks[0].Name)
	assert.Equal(t, time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC), tasks[0].ScheduledDate)
	assert.Equal(t, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC), tasks[2].ScheduledDate)
	assert.Equal(t, StatusScheduled, tasks[2].Status)
}

func TestScheduler_Schedule(t *testing.T) {
	repo := &fakeRepo{existing: map[string]bool{}}
	s := NewScheduler(repo, nil, zap.NewNop())
	companyID, employeeID := uuid.NewString(), uuid.NewString()
	hire := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	created, err := s.Schedule(context.Background(), nil, companyID, employeeID, hire)
	assert.NoError(t, err)
	assert.Equal(t, 3, created)

	again, err := s.Schedule(context.Background(), nil, companyID, employeeID, hire)
	assert.NoError(t, err)
	assert.Equal(t, 0, again)
	assert.Len(t, repo.saved, 3)
}

func TestScheduler_ScheduleErrors(t *testing.T) {
	s := NewScheduler(&fakeRepo{err: errors.New("db down")}, []int{45}, zap.NewNop())

	_, err := s.Schedule(context.Background(), nil, "bad", uuid.NewString(), time.Now())
	assert.Error(t, err)

	_, err = s.Schedule(context.Background(), nil, uuid.NewString(), uuid.NewString(), time.Now())
	assert.EqualError(t, err, "db down")
}

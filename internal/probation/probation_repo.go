package probation

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hris-onboarding/internal/shared/dbtx"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// CreateTasks skips check-ins that already exist and returns how many were inserted.
	CreateTasks(ctx context.Context, tasks []Task) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

func (r *repository) CreateTasks(ctx context.Context, tasks []Task) (int, error) {
	if len(tasks) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "checkin_type"}},
			DoNothing: true,
		}).
		Create(&tasks)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

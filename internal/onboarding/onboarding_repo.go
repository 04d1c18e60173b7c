package onboarding

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hris-onboarding/internal/shared/dbtx"
	"hris-onboarding/internal/tenant"
)

var errVersionConflict = errors.New("onboarding record version conflict")

// ListFilter narrows ListRecords. Zero values mean no filter; PageSize 0 lists everything.
type ListFilter struct {
	Status   OverallStatus
	Phase    int
	Page     int
	PageSize int
}

//go:generate mockgen -source=onboarding_repo.go -destination=mock/onboarding_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindRecordByEmployee(ctx context.Context, companyID, employeeID string) (*Record, error)
	// LockRecordByEmployee reads the record with SELECT ... FOR UPDATE.
	LockRecordByEmployee(ctx context.Context, companyID, employeeID string) (*Record, error)
	CreateRecord(ctx context.Context, rec *Record) error
	// UpdateRecord writes rec only if its version is unchanged, then bumps it.
	UpdateRecord(ctx context.Context, rec *Record) error
	ListRecords(ctx context.Context, companyID string, filter ListFilter) ([]Record, int64, error)
	ListDocuments(ctx context.Context, companyID, employeeID string) ([]Document, error)
	FindDocument(ctx context.Context, companyID, documentID string) (*Document, error)
	// CreateDocuments skips rows whose (employee_id, document_type) already exists
	// and returns how many were inserted.
	CreateDocuments(ctx context.Context, docs []Document) (int, error)
	UpdateDocument(ctx context.Context, doc *Document) error
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

func (r *repository) FindRecordByEmployee(ctx context.Context, companyID, employeeID string) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Scopes(tenant.EmployeeScope(companyID, employeeID)).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) LockRecordByEmployee(ctx context.Context, companyID, employeeID string) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.EmployeeScope(companyID, employeeID)).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) CreateRecord(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) UpdateRecord(ctx context.Context, rec *Record) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&Record{}).
		Where("id = ? AND version = ?", rec.ID, rec.Version).
		Updates(map[string]any{
			"workflow_id":                   rec.WorkflowID,
			"employment_status":             rec.EmploymentStatus,
			"current_phase":                 rec.CurrentPhase,
			"overall_status":                rec.OverallStatus,
			"employee_file_complete":        rec.EmployeeFileComplete,
			"file_completed_by":             rec.FileCompletedBy,
			"file_completed_at":             rec.FileCompletedAt,
			"profile_completion_percentage": rec.ProfileCompletionPercentage,
			"started_at":                    rec.StartedAt,
			"completed_at":                  rec.CompletedAt,
			"version":                       rec.Version + 1,
			"updated_at":                    now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errVersionConflict
	}
	rec.Version++
	rec.UpdatedAt = now
	return nil
}

func (r *repository) ListRecords(ctx context.Context, companyID string, filter ListFilter) ([]Record, int64, error) {
	q := r.db.WithContext(ctx).Model(&Record{}).Where("company_id = ?", companyID)
	if filter.Status != "" {
		q = q.Where("overall_status = ?", filter.Status)
	}
	if filter.Phase > 0 {
		q = q.Where("current_phase = ?", filter.Phase)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("created_at DESC, id ASC")
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var recs []Record
	if err := q.Find(&recs).Error; err != nil {
		return nil, 0, err
	}
	return recs, total, nil
}

func (r *repository) ListDocuments(ctx context.Context, companyID, employeeID string) ([]Document, error) {
	var docs []Document
	err := r.db.WithContext(ctx).
		Scopes(tenant.EmployeeScope(companyID, employeeID)).
		Order("phase ASC, sort_order ASC, document_type ASC").
		Find(&docs).Error
	return docs, err
}

func (r *repository) FindDocument(ctx context.Context, companyID, documentID string) (*Document, error) {
	var doc Document
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&doc, "id = ?", documentID).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *repository) CreateDocuments(ctx context.Context, docs []Document) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "document_type"}},
			DoNothing: true,
		}).
		Create(&docs)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

func (r *repository) UpdateDocument(ctx context.Context, doc *Document) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

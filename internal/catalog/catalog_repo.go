package catalog

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hris-onboarding/internal/shared/dbtx"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByID(ctx context.Context, id string) (*WorkflowTemplate, error)
	FindCompanyDefault(ctx context.Context, companyID string) (*WorkflowTemplate, error)
	FindGlobalDefault(ctx context.Context) (*WorkflowTemplate, error)
	ListForCompany(ctx context.Context, companyID string) ([]WorkflowTemplate, error)
	Create(ctx context.Context, tpl *WorkflowTemplate) error
	Update(ctx context.Context, tpl *WorkflowTemplate) error
	UnsetCompanyDefault(ctx context.Context, companyID string, exceptID uuid.UUID) error
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

func (r *repository) FindByID(ctx context.Context, id string) (*WorkflowTemplate, error) {
	var tpl WorkflowTemplate
	if err := r.db.WithContext(ctx).First(&tpl, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *repository) FindCompanyDefault(ctx context.Context, companyID string) (*WorkflowTemplate, error) {
	var tpl WorkflowTemplate
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_default = ? AND is_active = ?", companyID, true, true).
		Order("updated_at DESC").
		First(&tpl).Error
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *repository) FindGlobalDefault(ctx context.Context) (*WorkflowTemplate, error) {
	var tpl WorkflowTemplate
	err := r.db.WithContext(ctx).
		Where("company_id IS NULL AND is_default = ? AND is_active = ?", true, true).
		Order("updated_at DESC").
		First(&tpl).Error
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// ListForCompany returns the company's own templates plus shared ones.
func (r *repository) ListForCompany(ctx context.Context, companyID string) ([]WorkflowTemplate, error) {
	var tpls []WorkflowTemplate
	err := r.db.WithContext(ctx).
		Where("company_id = ? OR company_id IS NULL", companyID).
		Order("is_default DESC, name ASC").
		Find(&tpls).Error
	return tpls, err
}

func (r *repository) Create(ctx context.Context, tpl *WorkflowTemplate) error {
	return r.db.WithContext(ctx).Create(tpl).Error
}

func (r *repository) Update(ctx context.Context, tpl *WorkflowTemplate) error {
	return r.db.WithContext(ctx).Save(tpl).Error
}

func (r *repository) UnsetCompanyDefault(ctx context.Context, companyID string, exceptID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&WorkflowTemplate{}).
		Where("company_id = ? AND id <> ? AND is_default = ?", companyID, exceptID, true).
		Update("is_default", false).Error
}

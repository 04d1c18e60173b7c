package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	catalogerrors "hris-onboarding/internal/catalog/errors"
)

type fakeRepo struct {
	FindByIDFn            func(ctx context.Context, id string) (*WorkflowTemplate, error)
	FindCompanyDefaultFn  func(ctx context.Context, companyID string) (*WorkflowTemplate, error)
	FindGlobalDefaultFn   func(ctx context.Context) (*WorkflowTemplate, error)
	ListForCompanyFn      func(ctx context.Context, companyID string) ([]WorkflowTemplate, error)
	CreateFn              func(ctx context.Context, tpl *WorkflowTemplate) error
	UpdateFn              func(ctx context.Context, tpl *WorkflowTemplate) error
	UnsetCompanyDefaultFn func(ctx context.Context, companyID string, exceptID uuid.UUID) error

	defaultLookups int
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*WorkflowTemplate, error) {
	if f.FindByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.FindByIDFn(ctx, id)
}

func (f *fakeRepo) FindCompanyDefault(ctx context.Context, companyID string) (*WorkflowTemplate, error) {
	f.defaultLookups++
	if f.FindCompanyDefaultFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.FindCompanyDefaultFn(ctx, companyID)
}

func (f *fakeRepo) FindGlobalDefault(ctx context.Context) (*WorkflowTemplate, error) {
	if f.FindGlobalDefaultFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.FindGlobalDefaultFn(ctx)
}

func (f *fakeRepo) ListForCompany(ctx context.Context, companyID string) ([]WorkflowTemplate, error) {
	return f.ListForCompanyFn(ctx, companyID)
}

func (f *fakeRepo) Create(ctx context.Context, tpl *WorkflowTemplate) error {
	if f.CreateFn == nil {
		return nil
	}
	return f.CreateFn(ctx, tpl)
}

func (f *fakeRepo) Update(ctx context.Context, tpl *WorkflowTemplate) error {
	if f.UpdateFn == nil {
		return nil
	}
	return f.UpdateFn(ctx, tpl)
}

func (f *fakeRepo) UnsetCompanyDefault(ctx context.Context, companyID string, exceptID uuid.UUID) error {
	if f.UnsetCompanyDefaultFn == nil {
		return nil
	}
	return f.UnsetCompanyDefaultFn(ctx, companyID, exceptID)
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func mustBuiltin(t *testing.T) Catalog {
	t.Helper()
	cat, err := LoadBuiltin("")
	assert.NoError(t, err)
	return cat
}

func templateFor(t *testing.T, companyID *uuid.UUID, active bool) *WorkflowTemplate {
	t.Helper()
	phases := []Phase{{Number: 1, Name: "Paperwork", DueDays: 3, Documents: []DocumentType{
		{Type: "contract", Title: "Contract", RequiresSignature: true},
	}}}
	raw, err := json.Marshal(phases)
	assert.NoError(t, err)
	return &WorkflowTemplate{
		ID:          uuid.New(),
		CompanyID:   companyID,
		Name:        "Engineering onboarding",
		PhaseConfig: datatypes.JSON(raw),
		Version:     3,
		IsDefault:   true,
		IsActive:    active,
	}
}

func TestCatalogService_ForCompany(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("falls back to builtin", func(t *testing.T) {
		svc := NewService(nil, &fakeRepo{}, mustBuiltin(t), CacheOptions{})

		cat, err := svc.ForCompany(ctx, companyID.String(), "")

		assert.NoError(t, err)
		assert.Equal(t, SourceBuiltin, cat.Source)
		assert.Len(t, cat.Documents(), 13)
	})

	t.Run("company default wins", func(t *testing.T) {
		tpl := templateFor(t, &companyID, true)
		repo := &fakeRepo{
			FindCompanyDefaultFn: func(ctx context.Context, id string) (*WorkflowTemplate, error) { return tpl, nil },
		}
		svc := NewService(nil, repo, mustBuiltin(t), CacheOptions{})

		cat, err := svc.ForCompany(ctx, companyID.String(), "")

		assert.NoError(t, err)
		assert.Equal(t, SourceWorkflow, cat.Source)
		assert.Equal(t, tpl.ID.String(), cat.WorkflowID)
		assert.Equal(t, 3, cat.Version)
		d, ok := cat.Lookup("contract")
		assert.True(t, ok)
		assert.Equal(t, 3, d.DueDays)
	})

	t.Run("shared default when company has none", func(t *testing.T) {
		tpl := templateFor(t, nil, true)
		repo := &fakeRepo{
			FindGlobalDefaultFn: func(ctx context.Context) (*WorkflowTemplate, error) { return tpl, nil },
		}
		svc := NewService(nil, repo, mustBuiltin(t), CacheOptions{})

		cat, err := svc.ForCompany(ctx, companyID.String(), "")

		assert.NoError(t, err)
		assert.Equal(t, tpl.ID.String(), cat.WorkflowID)
	})

	t.Run("explicit workflow of another company is hidden", func(t *testing.T) {
		other := uuid.New()
		tpl := templateFor(t, &other, true)
		repo := &fakeRepo{
			FindByIDFn: func(ctx context.Context, id string) (*WorkflowTemplate, error) { return tpl, nil },
		}
		svc := NewService(nil, repo, mustBuiltin(t), CacheOptions{})

		_, err := svc.ForCompany(ctx, companyID.String(), tpl.ID.String())

		assert.ErrorIs(t, err, catalogerrors.ErrWorkflowNotFound)
	})

	t.Run("inactive workflow", func(t *testing.T) {
		tpl := templateFor(t, &companyID, false)
		repo := &fakeRepo{
			FindByIDFn: func(ctx context.Context, id string) (*WorkflowTemplate, error) { return tpl, nil },
		}
		svc := NewService(nil, repo, mustBuiltin(t), CacheOptions{})

		_, err := svc.ForCompany(ctx, companyID.String(), tpl.ID.String())

		assert.ErrorIs(t, err, catalogerrors.ErrWorkflowInactive)
	})

	t.Run("malformed workflow id", func(t *testing.T) {
		svc := NewService(nil, &fakeRepo{}, mustBuiltin(t), CacheOptions{})

		_, err := svc.ForCompany(ctx, companyID.String(), "nope")

		assert.ErrorIs(t, err, catalogerrors.ErrInvalidWorkflowID)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		dbErr := errors.New("db down")
		repo := &fakeRepo{
			FindCompanyDefaultFn: func(ctx context.Context, id string) (*WorkflowTemplate, error) { return nil, dbErr },
		}
		svc := NewService(nil, repo, mustBuiltin(t), CacheOptions{})

		_, err := svc.ForCompany(ctx, companyID.String(), "")

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestCatalogService_ForCompany_LocalCache(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(nil, repo, mustBuiltin(t), CacheOptions{LocalTTL: time.Minute})

	for i := 0; i < 3; i++ {
		_, err := svc.ForCompany(context.Background(), "company-1", "")
		assert.NoError(t, err)
	}

	assert.Equal(t, 1, repo.defaultLookups)
}

func TestCatalogService_ForCompany_RedisCache(t *testing.T) {
	builtin := mustBuiltin(t)
	raw, err := json.Marshal(builtin)
	assert.NoError(t, err)
	key := GetCatalogKey("company-1", "")

	t.Run("miss loads and stores", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(key).RedisNil()
		mock.ExpectSet(key, raw, time.Hour).SetVal("OK")

		repo := &fakeRepo{}
		svc := NewService(nil, repo, builtin, CacheOptions{Redis: rdb})

		_, err := svc.ForCompany(context.Background(), "company-1", "")

		assert.NoError(t, err)
		assert.Equal(t, 1, repo.defaultLookups)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hit skips repository", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(key).SetVal(string(raw))

		repo := &fakeRepo{}
		svc := NewService(nil, repo, builtin, CacheOptions{Redis: rdb})

		cat, err := svc.ForCompany(context.Background(), "company-1", "")

		assert.NoError(t, err)
		assert.Zero(t, repo.defaultLookups)
		assert.Len(t, cat.Documents(), 13)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogService_CreateWorkflow(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()

	validPhases := []Phase{{Number: 1, Name: "Paperwork", DueDays: 2, Documents: []DocumentType{
		{Type: "contract", Title: "Contract", RequiresSignature: true},
	}}}

	t.Run("default unsets previous and invalidates cache", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		rdb, redisMock := redismock.NewClientMock()

		var created *WorkflowTemplate
		var unsetExcept uuid.UUID
		repo := &fakeRepo{
			CreateFn: func(ctx context.Context, tpl *WorkflowTemplate) error {
				created = tpl
				return nil
			},
			UnsetCompanyDefaultFn: func(ctx context.Context, cid string, exceptID uuid.UUID) error {
				unsetExcept = exceptID
				return nil
			},
		}
		svc := NewService(db, repo, mustBuiltin(t), CacheOptions{Redis: rdb})

		prefix := CatalogKeyPrefix + companyID + ":"
		staleKey := prefix + "default"
		expectTx(t, sqlMock, true)
		redisMock.ExpectScan(0, prefix+"*", 100).SetVal([]string{staleKey}, 0)
		redisMock.ExpectDel(staleKey).SetVal(1)

		resp, err := svc.CreateWorkflow(ctx, companyID, actorID, CreateWorkflowRequest{
			Name:      "  Sales onboarding ",
			Phases:    validPhases,
			IsDefault: true,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Sales onboarding", resp.Name)
		assert.Equal(t, 1, resp.Version)
		assert.True(t, resp.IsDefault)
		assert.Equal(t, created.ID, unsetExcept)
		assert.Equal(t, actorID, created.CreatedBy.String())
		assert.NoError(t, sqlMock.ExpectationsWereMet())
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("invalid phases rejected before tx", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		svc := NewService(db, &fakeRepo{}, mustBuiltin(t), CacheOptions{})

		_, err = svc.CreateWorkflow(ctx, companyID, actorID, CreateWorkflowRequest{
			Name:   "Broken",
			Phases: []Phase{{Number: 9, Name: "Nine"}},
		})

		assert.ErrorIs(t, err, catalogerrors.ErrInvalidPhaseConfig)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestCatalogService_UpdateWorkflow(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("shared workflow is read only", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		tpl := templateFor(t, nil, true)
		repo := &fakeRepo{
			FindByIDFn: func(ctx context.Context, id string) (*WorkflowTemplate, error) { return tpl, nil },
		}
		svc := NewService(db, repo, mustBuiltin(t), CacheOptions{})
		expectTx(t, sqlMock, false)

		_, err = svc.UpdateWorkflow(ctx, companyID.String(), tpl.ID.String(), UpdateWorkflowRequest{})

		assert.ErrorIs(t, err, catalogerrors.ErrGlobalWorkflowReadOnly)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("phase change bumps version", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		tpl := templateFor(t, &companyID, true)
		tpl.IsDefault = false
		repo := &fakeRepo{
			FindByIDFn: func(ctx context.Context, id string) (*WorkflowTemplate, error) { return tpl, nil },
		}
		svc := NewService(db, repo, mustBuiltin(t), CacheOptions{})
		expectTx(t, sqlMock, true)

		resp, err := svc.UpdateWorkflow(ctx, companyID.String(), tpl.ID.String(), UpdateWorkflowRequest{
			Phases: []Phase{{Number: 2, Name: "Role", Documents: []DocumentType{{Type: "jd", Title: "Job Description", RequiresAcknowledgment: true}}}},
		})

		assert.NoError(t, err)
		assert.Equal(t, 4, resp.Version)
		assert.Len(t, resp.Phases, 1)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

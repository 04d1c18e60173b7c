package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	catalogerrors "hris-onboarding/internal/catalog/errors"
	"hris-onboarding/internal/shared/apperror"
	"hris-onboarding/internal/shared/contextutil"
)

//go:generate mockgen -source=catalog_service.go -destination=mock/catalog_service_mock.go -package=mock
type Service interface {
	// ForCompany resolves the catalog for a company: the given workflow, else the
	// company default, else the shared default, else the built-in catalog.
	ForCompany(ctx context.Context, companyID, workflowID string) (Catalog, error)
	ListWorkflows(ctx context.Context, companyID string) ([]WorkflowResponse, error)
	GetWorkflow(ctx context.Context, companyID, id string) (WorkflowResponse, error)
	CreateWorkflow(ctx context.Context, companyID, actorID string, req CreateWorkflowRequest) (WorkflowResponse, error)
	UpdateWorkflow(ctx context.Context, companyID, id string, req UpdateWorkflowRequest) (WorkflowResponse, error)
}

type CacheOptions struct {
	Redis    *redis.Client
	RedisTTL time.Duration
	LocalTTL time.Duration
}

type service struct {
	db      *sql.DB
	repo    Repository
	builtin Catalog
	cache   *catalogCache
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, builtin Catalog, cacheOpts CacheOptions, logger ...*zap.Logger) Service {
	l := zap.L().Named("catalog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.service")
	}
	if cacheOpts.RedisTTL <= 0 {
		cacheOpts.RedisTTL = time.Hour
	}
	return &service{
		db:      db,
		repo:    repo,
		builtin: builtin,
		cache:   newCatalogCache(cacheOpts.Redis, cacheOpts.RedisTTL, cacheOpts.LocalTTL, l),
		logger:  l,
	}
}

func (s *service) ForCompany(ctx context.Context, companyID, workflowID string) (Catalog, error) {
	workflowID = strings.TrimSpace(workflowID)
	if workflowID != "" {
		if _, err := uuid.Parse(workflowID); err != nil {
			return Catalog{}, catalogerrors.ErrInvalidWorkflowID
		}
	}

	return s.cache.getOrLoad(ctx, GetCatalogKey(companyID, workflowID), func() (Catalog, error) {
		return s.resolve(ctx, companyID, workflowID)
	})
}

func (s *service) resolve(ctx context.Context, companyID, workflowID string) (Catalog, error) {
	rid := contextutil.GetRequestID(ctx)

	if workflowID != "" {
		tpl, err := s.repo.FindByID(ctx, workflowID)
		if err != nil {
			return Catalog{}, mapRepositoryError(err)
		}
		if !visibleTo(*tpl, companyID) {
			return Catalog{}, catalogerrors.ErrWorkflowNotFound
		}
		if !tpl.IsActive {
			return Catalog{}, catalogerrors.ErrWorkflowInactive
		}
		return templateToCatalog(*tpl)
	}

	tpl, err := s.repo.FindCompanyDefault(ctx, companyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tpl, err = s.repo.FindGlobalDefault(ctx)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Debug("using builtin catalog", zap.String("request_id", rid), zap.String("company_id", companyID))
		return s.builtin, nil
	}
	if err != nil {
		s.logger.Error("resolve catalog failed", zap.String("request_id", rid), zap.String("company_id", companyID), zap.Error(err))
		return Catalog{}, err
	}

	return templateToCatalog(*tpl)
}

func (s *service) ListWorkflows(ctx context.Context, companyID string) ([]WorkflowResponse, error) {
	tpls, err := s.repo.ListForCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("list workflows failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]WorkflowResponse, 0, len(tpls))
	for _, tpl := range tpls {
		resp = append(resp, mapToWorkflowResponse(tpl))
	}
	return resp, nil
}

func (s *service) GetWorkflow(ctx context.Context, companyID, id string) (WorkflowResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return WorkflowResponse{}, catalogerrors.ErrInvalidWorkflowID
	}

	tpl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return WorkflowResponse{}, mapRepositoryError(err)
	}
	if !visibleTo(*tpl, companyID) {
		return WorkflowResponse{}, catalogerrors.ErrWorkflowNotFound
	}
	return mapToWorkflowResponse(*tpl), nil
}

func (s *service) CreateWorkflow(ctx context.Context, companyID, actorID string, req CreateWorkflowRequest) (WorkflowResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create workflow requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("name", req.Name),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return WorkflowResponse{}, apperror.InvalidField("company_id")
	}

	phaseConfig, err := encodePhases(req.Phases)
	if err != nil {
		s.logger.Warn("create workflow invalid phases", zap.String("request_id", rid), zap.Error(err))
		return WorkflowResponse{}, err
	}

	tpl := &WorkflowTemplate{
		ID:          uuid.New(),
		CompanyID:   &companyUUID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		PhaseConfig: phaseConfig,
		Version:     1,
		IsDefault:   req.IsDefault,
		IsActive:    true,
	}
	if actor, err := uuid.Parse(actorID); err == nil {
		tpl.CreatedBy = &actor
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create workflow begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return WorkflowResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, tpl); err != nil {
		s.logger.Error("create workflow persist failed", zap.String("request_id", rid), zap.Error(err))
		return WorkflowResponse{}, mapRepositoryError(err)
	}
	if tpl.IsDefault {
		if err := qtx.UnsetCompanyDefault(ctx, companyID, tpl.ID); err != nil {
			s.logger.Error("create workflow unset default failed", zap.String("request_id", rid), zap.Error(err))
			return WorkflowResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return WorkflowResponse{}, err
	}

	s.cache.invalidate(ctx, CatalogKeyPrefix+companyID+":")
	s.logger.Info("create workflow success",
		zap.String("request_id", rid),
		zap.String("workflow_id", tpl.ID.String()),
	)

	return mapToWorkflowResponse(*tpl), nil
}

// UpdateWorkflow bumps the version whenever phases change.
func (s *service) UpdateWorkflow(ctx context.Context, companyID, id string, req UpdateWorkflowRequest) (WorkflowResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(id); err != nil {
		return WorkflowResponse{}, catalogerrors.ErrInvalidWorkflowID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update workflow begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return WorkflowResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	tpl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return WorkflowResponse{}, mapRepositoryError(err)
	}
	if tpl.CompanyID == nil {
		return WorkflowResponse{}, catalogerrors.ErrGlobalWorkflowReadOnly
	}
	if tpl.CompanyID.String() != companyID {
		return WorkflowResponse{}, catalogerrors.ErrWorkflowNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return WorkflowResponse{}, apperror.RequiredField("name")
		}
		tpl.Name = name
	}
	if req.Description != nil {
		tpl.Description = *req.Description
	}
	if req.Phases != nil {
		phaseConfig, err := encodePhases(req.Phases)
		if err != nil {
			return WorkflowResponse{}, err
		}
		tpl.PhaseConfig = phaseConfig
		tpl.Version++
	}
	if req.IsActive != nil {
		tpl.IsActive = *req.IsActive
	}
	if req.IsDefault != nil {
		tpl.IsDefault = *req.IsDefault
	}

	if err := qtx.Update(ctx, tpl); err != nil {
		s.logger.Error("update workflow persist failed", zap.String("request_id", rid), zap.Error(err))
		return WorkflowResponse{}, mapRepositoryError(err)
	}
	if tpl.IsDefault {
		if err := qtx.UnsetCompanyDefault(ctx, companyID, tpl.ID); err != nil {
			return WorkflowResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return WorkflowResponse{}, err
	}

	s.cache.invalidate(ctx, CatalogKeyPrefix+companyID+":")
	s.logger.Info("update workflow success",
		zap.String("request_id", rid),
		zap.String("workflow_id", tpl.ID.String()),
		zap.Int("version", tpl.Version),
	)

	return mapToWorkflowResponse(*tpl), nil
}

func visibleTo(tpl WorkflowTemplate, companyID string) bool {
	return tpl.CompanyID == nil || tpl.CompanyID.String() == companyID
}

func encodePhases(phases []Phase) (datatypes.JSON, error) {
	cat := Catalog{Phases: phases}
	cat.Normalize()
	if err := cat.Validate(); err != nil {
		return nil, apperror.Derive(catalogerrors.ErrInvalidPhaseConfig, err.Error(), nil)
	}
	raw, err := json.Marshal(cat.Phases)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func templateToCatalog(tpl WorkflowTemplate) (Catalog, error) {
	var phases []Phase
	if err := json.Unmarshal(tpl.PhaseConfig, &phases); err != nil {
		return Catalog{}, apperror.Derive(catalogerrors.ErrInvalidPhaseConfig, "stored phase configuration is unreadable", nil)
	}

	cat := Catalog{
		WorkflowID: tpl.ID.String(),
		Source:     SourceWorkflow,
		Name:       tpl.Name,
		Version:    tpl.Version,
		Phases:     phases,
	}
	cat.Normalize()
	if err := cat.Validate(); err != nil {
		return Catalog{}, apperror.Derive(catalogerrors.ErrInvalidPhaseConfig, err.Error(), nil)
	}
	return cat, nil
}

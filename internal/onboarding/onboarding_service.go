package onboarding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hris-onboarding/internal/catalog"
	"hris-onboarding/internal/employee"
	onboardingerrors "hris-onboarding/internal/onboarding/errors"
	"hris-onboarding/internal/shared/apperror"
	"hris-onboarding/internal/shared/contextutil"
	"hris-onboarding/internal/shared/dbtx"
)

type CatalogProvider interface {
	ForCompany(ctx context.Context, companyID, workflowID string) (catalog.Catalog, error)
}

type ProfileLookup interface {
	GetProfile(ctx context.Context, companyID, employeeID string) (employee.Profile, error)
	GetProfiles(ctx context.Context, companyID string, employeeIDs []string) (map[string]employee.Profile, error)
}

// ProbationScheduler creates check-in tasks inside the activation transaction.
type ProbationScheduler interface {
	Schedule(ctx context.Context, tx *sql.Tx, companyID, employeeID string, hireDate time.Time) (int, error)
}

type Options struct {
	FileCompleteRequiresPhaseOne bool
	DefaultDueDays               int
	Now                          func() time.Time
}

type Service interface {
	StartOnboarding(ctx context.Context, companyID, employeeID, workflowID, actorID string) (RecordResponse, error)
	MarkFileComplete(ctx context.Context, companyID, employeeID, actorID string) (RecordResponse, error)
	Activate(ctx context.Context, companyID, employeeID, actorID string) (ActivationResponse, error)
	RefreshDocuments(ctx context.Context, companyID, employeeID string) (RefreshResponse, error)
	AssignDocuments(ctx context.Context, companyID, employeeID string, specs []catalog.DocumentType, opts AssignOptions) (int, error)

	UploadDocument(ctx context.Context, companyID, employeeID, documentID, fileReference string) (DocumentTransitionResponse, error)
	SignDocument(ctx context.Context, companyID, employeeID, documentID string) (DocumentTransitionResponse, error)
	AcknowledgeDocument(ctx context.Context, companyID, employeeID, documentID string) (DocumentTransitionResponse, error)
	VerifyDocument(ctx context.Context, companyID, documentID, actorID string) (DocumentTransitionResponse, error)
	RejectDocument(ctx context.Context, companyID, documentID, actorID, reason string) (DocumentTransitionResponse, error)

	GetStatus(ctx context.Context, companyID, employeeID string) (StatusResponse, error)
	GetMyOnboarding(ctx context.Context, companyID, employeeID string) (StatusResponse, error)
	CheckHardGates(ctx context.Context, companyID, employeeID string) (GateResult, error)
	ListOnboarding(ctx context.Context, companyID string, filter ListFilter) ([]RecordResponse, int64, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	catalogs  CatalogProvider
	profiles  ProfileLookup
	probation ProbationScheduler
	notifier  Notifier
	opts      Options
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	catalogs CatalogProvider,
	profiles ProfileLookup,
	probation ProbationScheduler,
	notifier Notifier,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("onboarding.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.service")
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	return &service{
		db:        db,
		repo:      repo,
		catalogs:  catalogs,
		profiles:  profiles,
		probation: probation,
		notifier:  notifier,
		opts:      opts,
		logger:    l,
	}
}

func (s *service) StartOnboarding(ctx context.Context, companyID, employeeID, workflowID, actorID string) (RecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("start onboarding requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
		zap.String("workflow_id", workflowID),
	)

	if _, err := uuid.Parse(employeeID); err != nil {
		return RecordResponse{}, onboardingerrors.ErrInvalidEmployeeID
	}
	profile, err := s.profiles.GetProfile(ctx, companyID, employeeID)
	if err != nil {
		return RecordResponse{}, err
	}
	cat, err := s.catalogs.ForCompany(ctx, companyID, workflowID)
	if err != nil {
		return RecordResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("start onboarding begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	rec, err := s.lockOrCreateRecord(ctx, qtx, companyID, employeeID, onboardingerrors.ErrAlreadyStarted)
	if err != nil {
		return RecordResponse{}, err
	}
	if rec.EmploymentStatus != StatusNewHire {
		s.logger.Warn("start onboarding rejected",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.String("employment_status", string(rec.EmploymentStatus)),
		)
		return RecordResponse{}, onboardingerrors.ErrAlreadyStarted
	}

	now := s.opts.Now()
	rec.EmploymentStatus = StatusOnboarding
	rec.StartedAt = &now
	if cat.Source == catalog.SourceWorkflow {
		if wid, err := uuid.Parse(cat.WorkflowID); err == nil {
			rec.WorkflowID = &wid
		}
	}

	docs, created, err := s.seed(ctx, qtx, *rec, cat.Documents(), AssignOptions{At: now})
	if err != nil {
		s.logger.Error("start onboarding seed documents failed", zap.String("request_id", rid), zap.Error(err))
		return RecordResponse{}, err
	}

	Recompute(docs, rec.EmployeeFileComplete).ApplyTo(rec)
	if err := qtx.UpdateRecord(ctx, rec); err != nil {
		return RecordResponse{}, s.persistError(ctx, "start onboarding", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return RecordResponse{}, err
	}

	s.logger.Info("start onboarding success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("catalog_source", cat.Source),
		zap.Int("documents_created", created),
	)
	if s.notifier != nil {
		s.notifier.OnboardingStarted(ctx, *rec, actorID)
	}

	return mapToRecordResponse(*rec, profile.FullName), nil
}

func (s *service) MarkFileComplete(ctx context.Context, companyID, employeeID, actorID string) (RecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(employeeID); err != nil {
		return RecordResponse{}, onboardingerrors.ErrInvalidEmployeeID
	}
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return RecordResponse{}, onboardingerrors.ErrActorRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("mark file complete begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	rec, err := qtx.LockRecordByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return RecordResponse{}, mapRepositoryError(err)
	}
	if rec.EmploymentStatus != StatusOnboarding {
		return RecordResponse{}, onboardingerrors.ErrNotOnboarding
	}
	if rec.EmployeeFileComplete {
		if err := tx.Commit(); err != nil {
			return RecordResponse{}, err
		}
		return mapToRecordResponse(*rec, ""), nil
	}

	docs, err := qtx.ListDocuments(ctx, companyID, employeeID)
	if err != nil {
		return RecordResponse{}, s.persistError(ctx, "mark file complete", err)
	}

	if s.opts.FileCompleteRequiresPhaseOne {
		if open := openRequiredTitles(docs, catalog.MinPhase); len(open) > 0 {
			s.logger.Warn("mark file complete rejected",
				zap.String("request_id", rid),
				zap.String("employee_id", employeeID),
				zap.Strings("open_documents", open),
			)
			return RecordResponse{}, apperror.Derive(onboardingerrors.ErrPhaseOneIncomplete,
				"Phase 1 documents must be completed first: "+strings.Join(open, ", "),
				map[string]any{"documents": open},
			)
		}
	}

	now := s.opts.Now()
	rec.EmployeeFileComplete = true
	rec.FileCompletedBy = &actor
	rec.FileCompletedAt = &now
	Recompute(docs, true).ApplyTo(rec)

	if err := qtx.UpdateRecord(ctx, rec); err != nil {
		return RecordResponse{}, s.persistError(ctx, "mark file complete", err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return RecordResponse{}, err
	}

	s.logger.Info("mark file complete success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Int("current_phase", rec.CurrentPhase),
	)
	return mapToRecordResponse(*rec, ""), nil
}

func (s *service) Activate(ctx context.Context, companyID, employeeID, actorID string) (ActivationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("activate requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
	)

	if _, err := uuid.Parse(employeeID); err != nil {
		return ActivationResponse{}, onboardingerrors.ErrInvalidEmployeeID
	}
	profile, err := s.profiles.GetProfile(ctx, companyID, employeeID)
	if err != nil {
		return ActivationResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("activate begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ActivationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	rec, err := qtx.LockRecordByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return ActivationResponse{}, mapRepositoryError(err)
	}
	switch rec.EmploymentStatus {
	case StatusOnboarding:
	case StatusActive:
		return ActivationResponse{}, onboardingerrors.ErrAlreadyActive
	default:
		return ActivationResponse{}, apperror.Derive(onboardingerrors.ErrInvalidTransition,
			fmt.Sprintf("cannot activate employee in status %s", rec.EmploymentStatus),
			map[string]string{"current_status": string(rec.EmploymentStatus), "action": "activate"},
		)
	}

	docs, err := qtx.ListDocuments(ctx, companyID, employeeID)
	if err != nil {
		return ActivationResponse{}, s.persistError(ctx, "activate", err)
	}

	gates := EvaluateGates(*rec, docs)
	if !gates.Passed {
		s.logger.Warn("activate blocked by gates",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Strings("errors", gates.Errors),
		)
		return ActivationResponse{}, apperror.Derive(onboardingerrors.ErrGateBlocked, onboardingerrors.ErrGateBlocked.Message, gates)
	}

	now := s.opts.Now()
	rec.EmploymentStatus = StatusActive
	rec.CompletedAt = &now
	Recompute(docs, rec.EmployeeFileComplete).ApplyTo(rec)
	rec.OverallStatus = OverallCompleted

	if err := qtx.UpdateRecord(ctx, rec); err != nil {
		return ActivationResponse{}, s.persistError(ctx, "activate", err)
	}

	scheduled := 0
	if s.probation != nil {
		hireDate := now
		if profile.HireDate != nil {
			hireDate = *profile.HireDate
		}
		scheduled, err = s.probation.Schedule(ctx, tx, companyID, employeeID, hireDate)
		if err != nil {
			s.logger.Error("activate schedule probation failed", zap.String("request_id", rid), zap.Error(err))
			return ActivationResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return ActivationResponse{}, err
	}

	s.logger.Info("activate success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Int("probation_checkins", scheduled),
	)
	if s.notifier != nil {
		s.notifier.EmployeeActivated(ctx, *rec, actorID)
	}

	return ActivationResponse{
		Onboarding:        mapToRecordResponse(*rec, profile.FullName),
		ProbationCheckIns: scheduled,
	}, nil
}

// RefreshDocuments adds catalog entries missing from the ledger. Existing rows are never touched.
func (s *service) RefreshDocuments(ctx context.Context, companyID, employeeID string) (RefreshResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(employeeID); err != nil {
		return RefreshResponse{}, onboardingerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("refresh documents begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return RefreshResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	rec, err := qtx.LockRecordByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return RefreshResponse{}, mapRepositoryError(err)
	}
	if rec.EmploymentStatus != StatusOnboarding {
		return RefreshResponse{}, onboardingerrors.ErrNotOnboarding
	}

	workflowID := ""
	if rec.WorkflowID != nil {
		workflowID = rec.WorkflowID.String()
	}
	cat, err := s.catalogs.ForCompany(ctx, companyID, workflowID)
	if err != nil {
		return RefreshResponse{}, err
	}

	docs, created, err := s.seed(ctx, qtx, *rec, cat.Documents(), AssignOptions{At: s.opts.Now()})
	if err != nil {
		return RefreshResponse{}, s.persistError(ctx, "refresh documents", err)
	}
	if created > 0 {
		Recompute(docs, rec.EmployeeFileComplete).ApplyTo(rec)
		if err := qtx.UpdateRecord(ctx, rec); err != nil {
			return RefreshResponse{}, s.persistError(ctx, "refresh documents", err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return RefreshResponse{}, err
	}

	s.logger.Info("refresh documents success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Int("documents_created", created),
	)
	return RefreshResponse{DocumentsCreated: created}, nil
}

func (s *service) AssignDocuments(ctx context.Context, companyID, employeeID string, specs []catalog.DocumentType, opts AssignOptions) (int, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(employeeID); err != nil {
		return 0, onboardingerrors.ErrInvalidEmployeeID
	}
	if _, err := s.profiles.GetProfile(ctx, companyID, employeeID); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("assign documents begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return 0, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	rec, err := s.lockOrCreateRecord(ctx, qtx, companyID, employeeID, onboardingerrors.ErrConcurrentModification)
	if err != nil {
		return 0, err
	}
	if rec.EmploymentStatus != StatusNewHire && rec.EmploymentStatus != StatusOnboarding {
		return 0, apperror.Derive(onboardingerrors.ErrNotOnboarding,
			fmt.Sprintf("documents cannot be assigned to an employee in status %s", rec.EmploymentStatus), nil)
	}

	if opts.At.IsZero() {
		opts.At = s.opts.Now()
	}
	docs, created, err := s.seed(ctx, qtx, *rec, specs, opts)
	if err != nil {
		return 0, s.persistError(ctx, "assign documents", err)
	}
	if created > 0 {
		Recompute(docs, rec.EmployeeFileComplete).ApplyTo(rec)
		if err := qtx.UpdateRecord(ctx, rec); err != nil {
			return 0, s.persistError(ctx, "assign documents", err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return 0, err
	}

	s.logger.Debug("assign documents success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Int("documents_created", created),
	)
	return created, nil
}

func (s *service) UploadDocument(ctx context.Context, companyID, employeeID, documentID, fileReference string) (DocumentTransitionResponse, error) {
	resp, _, _, err := s.transitionDocument(ctx, companyID, employeeID, documentID, ActionUpload, TransitionMeta{
		ActorID:       employeeID,
		FileReference: fileReference,
	})
	return resp, err
}

func (s *service) SignDocument(ctx context.Context, companyID, employeeID, documentID string) (DocumentTransitionResponse, error) {
	resp, _, _, err := s.transitionDocument(ctx, companyID, employeeID, documentID, ActionSign, TransitionMeta{ActorID: employeeID})
	return resp, err
}

func (s *service) AcknowledgeDocument(ctx context.Context, companyID, employeeID, documentID string) (DocumentTransitionResponse, error) {
	resp, _, _, err := s.transitionDocument(ctx, companyID, employeeID, documentID, ActionAcknowledge, TransitionMeta{ActorID: employeeID})
	return resp, err
}

func (s *service) VerifyDocument(ctx context.Context, companyID, documentID, actorID string) (DocumentTransitionResponse, error) {
	resp, _, _, err := s.transitionDocument(ctx, companyID, "", documentID, ActionVerify, TransitionMeta{ActorID: actorID})
	return resp, err
}

func (s *service) RejectDocument(ctx context.Context, companyID, documentID, actorID, reason string) (DocumentTransitionResponse, error) {
	resp, rec, doc, err := s.transitionDocument(ctx, companyID, "", documentID, ActionReject, TransitionMeta{
		ActorID: actorID,
		Reason:  reason,
	})
	if err != nil {
		return resp, err
	}
	if s.notifier != nil {
		s.notifier.DocumentRejected(ctx, rec, doc, actorID)
	}
	return resp, nil
}

// transitionDocument applies one ledger action and recomputes the record in a
// single transaction. ownerID scopes self-service calls to the caller's documents.
func (s *service) transitionDocument(ctx context.Context, companyID, ownerID, documentID string, action Action, meta TransitionMeta) (DocumentTransitionResponse, Record, Document, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("document transition requested",
		zap.String("request_id", rid),
		zap.String("document_id", documentID),
		zap.String("action", string(action)),
	)

	docID, err := uuid.Parse(documentID)
	if err != nil {
		return DocumentTransitionResponse{}, Record{}, Document{}, onboardingerrors.ErrInvalidDocumentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("document transition begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return DocumentTransitionResponse{}, Record{}, Document{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	found, err := qtx.FindDocument(ctx, companyID, documentID)
	if err != nil {
		return DocumentTransitionResponse{}, Record{}, Document{}, mapDocumentError(err)
	}
	if ownerID != "" && found.EmployeeID.String() != ownerID {
		return DocumentTransitionResponse{}, Record{}, Document{}, onboardingerrors.ErrDocumentNotFound
	}

	employeeID := found.EmployeeID.String()
	rec, err := qtx.LockRecordByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return DocumentTransitionResponse{}, Record{}, Document{}, mapRepositoryError(err)
	}
	if rec.EmploymentStatus != StatusOnboarding {
		return DocumentTransitionResponse{}, Record{}, Document{}, onboardingerrors.ErrNotOnboarding
	}

	// re-read under the record lock
	docs, err := qtx.ListDocuments(ctx, companyID, employeeID)
	if err != nil {
		return DocumentTransitionResponse{}, Record{}, Document{}, s.persistError(ctx, "document transition", err)
	}
	idx := -1
	for i := range docs {
		if docs[i].ID == docID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return DocumentTransitionResponse{}, Record{}, Document{}, onboardingerrors.ErrDocumentNotFound
	}

	meta.At = s.opts.Now()
	updated, err := Transition(docs[idx], action, meta)
	if err != nil {
		s.logger.Warn("document transition rejected",
			zap.String("request_id", rid),
			zap.String("document_id", documentID),
			zap.String("action", string(action)),
			zap.String("status", string(docs[idx].Status)),
			zap.Error(err),
		)
		return DocumentTransitionResponse{}, Record{}, Document{}, err
	}

	if err := qtx.UpdateDocument(ctx, &updated); err != nil {
		return DocumentTransitionResponse{}, Record{}, Document{}, s.persistError(ctx, "document transition", err)
	}
	docs[idx] = updated

	Recompute(docs, rec.EmployeeFileComplete).ApplyTo(rec)
	if err := qtx.UpdateRecord(ctx, rec); err != nil {
		return DocumentTransitionResponse{}, Record{}, Document{}, s.persistError(ctx, "document transition", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return DocumentTransitionResponse{}, Record{}, Document{}, err
	}

	s.logger.Info("document transition success",
		zap.String("request_id", rid),
		zap.String("document_id", documentID),
		zap.String("action", string(action)),
		zap.String("status", string(updated.Status)),
		zap.String("overall_status", string(rec.OverallStatus)),
	)

	return DocumentTransitionResponse{
		Document:   mapToDocumentResponse(updated),
		Onboarding: mapToRecordResponse(*rec, ""),
	}, *rec, updated, nil
}

func (s *service) GetStatus(ctx context.Context, companyID, employeeID string) (StatusResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return StatusResponse{}, onboardingerrors.ErrInvalidEmployeeID
	}

	var (
		rec  *Record
		docs []Document
	)
	err := dbtx.RunInTx(ctx, s.db, dbtx.ReadOnly, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)
		var err error
		if rec, err = qtx.FindRecordByEmployee(ctx, companyID, employeeID); err != nil {
			return mapRepositoryError(err)
		}
		if docs, err = qtx.ListDocuments(ctx, companyID, employeeID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, onboardingerrors.ErrOnboardingNotFound) {
			s.logger.Error("get status failed",
				zap.String("request_id", contextutil.GetRequestID(ctx)),
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
		}
		return StatusResponse{}, err
	}

	summary := EmployeeSummary{ID: employeeID}
	if profile, err := s.profiles.GetProfile(ctx, companyID, employeeID); err == nil {
		summary.FullName = profile.FullName
		summary.Email = profile.Email
		summary.HireDate = profile.HireDate
	} else {
		s.logger.Warn("get status profile lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
	}

	return StatusResponse{
		Onboarding: mapToRecordResponse(*rec, summary.FullName),
		Employee:   summary,
		Phases:     s.buildPhaseViews(ctx, companyID, rec, docs),
		HardGates:  EvaluateGates(*rec, docs),
	}, nil
}

func (s *service) GetMyOnboarding(ctx context.Context, companyID, employeeID string) (StatusResponse, error) {
	return s.GetStatus(ctx, companyID, employeeID)
}

func (s *service) CheckHardGates(ctx context.Context, companyID, employeeID string) (GateResult, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return GateResult{}, onboardingerrors.ErrInvalidEmployeeID
	}

	var result GateResult
	err := dbtx.RunInTx(ctx, s.db, dbtx.ReadOnly, func(tx *sql.Tx) error {
		qtx := s.repo.WithTx(tx)
		rec, err := qtx.FindRecordByEmployee(ctx, companyID, employeeID)
		if err != nil {
			return mapRepositoryError(err)
		}
		docs, err := qtx.ListDocuments(ctx, companyID, employeeID)
		if err != nil {
			return err
		}
		result = EvaluateGates(*rec, docs)
		return nil
	})
	if err != nil {
		return GateResult{}, err
	}
	return result, nil
}

func (s *service) ListOnboarding(ctx context.Context, companyID string, filter ListFilter) ([]RecordResponse, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, onboardingerrors.ErrInvalidStatusFilter
	}
	if filter.Phase != 0 && (filter.Phase < catalog.MinPhase || filter.Phase > catalog.CompletePhase) {
		return nil, 0, onboardingerrors.ErrInvalidPhaseFilter
	}

	var (
		recs  []Record
		total int64
	)
	err := dbtx.RunInTx(ctx, s.db, dbtx.ReadOnly, func(tx *sql.Tx) error {
		var err error
		recs, total, err = s.repo.WithTx(tx).ListRecords(ctx, companyID, filter)
		return err
	})
	if err != nil {
		s.logger.Error("list onboarding failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, 0, err
	}

	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.EmployeeID.String())
	}
	names := map[string]employee.Profile{}
	if len(ids) > 0 {
		if profiles, err := s.profiles.GetProfiles(ctx, companyID, ids); err == nil {
			names = profiles
		} else {
			s.logger.Warn("list onboarding profile lookup failed", zap.Error(err))
		}
	}

	resp := make([]RecordResponse, 0, len(recs))
	for _, r := range recs {
		resp = append(resp, mapToRecordResponse(r, names[r.EmployeeID.String()].FullName))
	}
	return resp, total, nil
}

// lockOrCreateRecord returns the locked record, creating a new_hire one when
// none exists. Losing the insert race to another transaction yields onDuplicate.
func (s *service) lockOrCreateRecord(ctx context.Context, qtx Repository, companyID, employeeID string, onDuplicate *apperror.AppError) (*Record, error) {
	rec, err := qtx.LockRecordByEmployee(ctx, companyID, employeeID)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.persistError(ctx, "lock onboarding record", err)
	}

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, apperror.InvalidField("company_id")
	}
	now := s.opts.Now()
	rec = &Record{
		ID:               uuid.New(),
		CompanyID:        companyUUID,
		EmployeeID:       uuid.MustParse(employeeID),
		EmploymentStatus: StatusNewHire,
		CurrentPhase:     catalog.MinPhase,
		OverallStatus:    OverallPending,
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := qtx.CreateRecord(ctx, rec); err != nil {
		if isDuplicateRecord(err) {
			s.logger.Warn("onboarding record created concurrently",
				zap.String("request_id", contextutil.GetRequestID(ctx)),
				zap.String("employee_id", employeeID),
			)
			return nil, onDuplicate
		}
		return nil, s.persistError(ctx, "create onboarding record", err)
	}
	return rec, nil
}

// seed inserts the specs missing from the ledger and returns the full ledger afterwards.
func (s *service) seed(ctx context.Context, qtx Repository, rec Record, specs []catalog.DocumentType, opts AssignOptions) ([]Document, int, error) {
	existing, err := qtx.ListDocuments(ctx, rec.CompanyID.String(), rec.EmployeeID.String())
	if err != nil {
		return nil, 0, err
	}
	missing := MissingFrom(existing, specs)
	if len(missing) == 0 {
		return existing, 0, nil
	}

	if opts.FallbackDueDays <= 0 {
		opts.FallbackDueDays = s.opts.DefaultDueDays
	}
	created, err := qtx.CreateDocuments(ctx, BuildDocuments(rec, missing, opts))
	if err != nil {
		return nil, 0, err
	}
	docs, err := qtx.ListDocuments(ctx, rec.CompanyID.String(), rec.EmployeeID.String())
	if err != nil {
		return nil, 0, err
	}
	return docs, created, nil
}

func (s *service) buildPhaseViews(ctx context.Context, companyID string, rec *Record, docs []Document) []PhaseView {
	workflowID := ""
	if rec.WorkflowID != nil {
		workflowID = rec.WorkflowID.String()
	}
	cat, err := s.catalogs.ForCompany(ctx, companyID, workflowID)
	if err != nil {
		s.logger.Debug("phase names unavailable", zap.Error(err))
	}

	ordered := append([]Document(nil), docs...)
	SortDocuments(ordered)

	summaries := SummarizePhases(ordered)
	views := make([]PhaseView, 0, len(summaries))
	for _, sum := range summaries {
		view := PhaseView{
			PhaseSummary: sum,
			Name:         cat.PhaseName(sum.Phase),
			Documents:    []DocumentResponse{},
		}
		for _, d := range ordered {
			if d.Phase == sum.Phase {
				view.Documents = append(view.Documents, mapToDocumentResponse(d))
			}
		}
		views = append(views, view)
	}
	return views
}

func (s *service) persistError(ctx context.Context, op string, err error) error {
	mapped := mapRepositoryError(err)
	var appErr *apperror.AppError
	if !errors.As(mapped, &appErr) {
		s.logger.Error(op+" persist failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
	return mapped
}

func openRequiredTitles(docs []Document, phase int) []string {
	var titles []string
	for _, d := range docs {
		if d.Phase == phase && d.IsRequired && !IsSatisfied(d) {
			titles = append(titles, d.Title)
		}
	}
	return titles
}

package onboarding

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"hris-onboarding/internal/catalog"
	onboardingerrors "hris-onboarding/internal/onboarding/errors"
	"hris-onboarding/internal/shared/apperror"
	"hris-onboarding/internal/shared/contextutil"
)

const defaultBulkConcurrency = 8

// BulkExecutor is the single-employee side of the bulk operations.
type BulkExecutor interface {
	AssignDocuments(ctx context.Context, companyID, employeeID string, specs []catalog.DocumentType, opts AssignOptions) (int, error)
	StartOnboarding(ctx context.Context, companyID, employeeID, workflowID, actorID string) (RecordResponse, error)
}

type ItemError struct {
	EmployeeID string `json:"employee_id"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

type BulkAssignResult struct {
	Requested int         `json:"requested"`
	Succeeded int         `json:"succeeded"`
	Created   int         `json:"documents_created"`
	Errors    []ItemError `json:"errors"`
}

type BulkStartResult struct {
	Requested int         `json:"requested"`
	Started   int         `json:"started"`
	Errors    []ItemError `json:"errors"`
}

type BulkCoordinator struct {
	exec        BulkExecutor
	catalogs    CatalogProvider
	concurrency int
	logger      *zap.Logger
}

func NewBulkCoordinator(exec BulkExecutor, catalogs CatalogProvider, concurrency int, logger ...*zap.Logger) *BulkCoordinator {
	l := zap.L().Named("onboarding.bulk")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.bulk")
	}
	if concurrency <= 0 {
		concurrency = defaultBulkConcurrency
	}
	return &BulkCoordinator{exec: exec, catalogs: catalogs, concurrency: concurrency, logger: l}
}

// BulkAssign assigns the same document types to every employee. Unknown types
// fail the whole request before any employee is touched; a bad employee id only
// fails its own entry.
func (b *BulkCoordinator) BulkAssign(ctx context.Context, companyID string, req BulkAssignRequest) (BulkAssignResult, error) {
	cat, err := b.catalogs.ForCompany(ctx, companyID, "")
	if err != nil {
		return BulkAssignResult{}, err
	}
	types := dedupeTypes(req.DocumentTypes)
	if len(types) == 0 {
		return BulkAssignResult{}, apperror.RequiredField("document_types")
	}
	specs, unknown := cat.Resolve(types)
	if len(unknown) > 0 {
		return BulkAssignResult{}, apperror.Derive(onboardingerrors.ErrUnknownDocumentType,
			"Unknown document type: "+strings.Join(unknown, ", "),
			map[string]any{"document_types": unknown},
		)
	}

	targets := resolveTargets(req.EmployeeIDs)
	opts := AssignOptions{DueDays: req.DueDays, IsRequired: req.IsRequired}
	created := make([]int, len(targets))
	errs := b.fanOut(ctx, targets, func(ctx context.Context, i int, id string) error {
		n, err := b.exec.AssignDocuments(ctx, companyID, id, specs, opts)
		created[i] = n
		return err
	})

	result := BulkAssignResult{Requested: len(targets), Errors: []ItemError{}}
	for i, t := range targets {
		if errs[i] != nil {
			result.Errors = append(result.Errors, toItemError(t.employeeID, errs[i]))
			continue
		}
		result.Succeeded++
		result.Created += created[i]
	}

	b.logger.Info("bulk assign finished",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("requested", result.Requested),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("documents_created", result.Created),
	)
	return result, nil
}

func (b *BulkCoordinator) BulkStartOnboarding(ctx context.Context, companyID, actorID string, req BulkStartRequest) (BulkStartResult, error) {
	targets := resolveTargets(req.EmployeeIDs)
	errs := b.fanOut(ctx, targets, func(ctx context.Context, _ int, id string) error {
		_, err := b.exec.StartOnboarding(ctx, companyID, id, req.WorkflowID, actorID)
		return err
	})

	result := BulkStartResult{Requested: len(targets), Errors: []ItemError{}}
	for i, t := range targets {
		if errs[i] != nil {
			result.Errors = append(result.Errors, toItemError(t.employeeID, errs[i]))
			continue
		}
		result.Started++
	}

	b.logger.Info("bulk start finished",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("requested", result.Requested),
		zap.Int("started", result.Started),
	)
	return result, nil
}

// fanOut runs fn for each valid target with bounded concurrency. Invalid targets
// keep their own error. Each task owns slot i of the returned slice; task errors
// are collected, never propagated to the group.
func (b *BulkCoordinator) fanOut(ctx context.Context, targets []bulkTarget, fn func(ctx context.Context, i int, id string) error) []error {
	errs := make([]error, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, t := range targets {
		if t.err != nil {
			errs[i] = t.err
			continue
		}
		i, t := i, t
		g.Go(func() error {
			errs[i] = fn(gctx, i, t.employeeID)
			return nil
		})
	}
	_ = g.Wait()

	return errs
}

// bulkTarget is one requested employee. employeeID is the canonical uuid, or
// the trimmed input when err is set.
type bulkTarget struct {
	employeeID string
	err        error
}

// resolveTargets keeps first-occurrence order and drops duplicates by canonical
// uuid, so case variants of one id count once. Blank entries each stay as their
// own failed target.
func resolveTargets(ids []string) []bulkTarget {
	seen := make(map[string]bool, len(ids))
	out := make([]bulkTarget, 0, len(ids))
	for _, raw := range ids {
		id := strings.TrimSpace(raw)
		if id == "" {
			out = append(out, bulkTarget{err: onboardingerrors.ErrBlankEmployeeID})
			continue
		}

		key, err := uuid.Parse(id)
		if err != nil {
			if seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, bulkTarget{employeeID: id, err: onboardingerrors.ErrInvalidEmployeeID})
			continue
		}
		if seen[key.String()] {
			continue
		}
		seen[key.String()] = true
		out = append(out, bulkTarget{employeeID: key.String()})
	}
	return out
}

func dedupeTypes(types []string) []string {
	seen := make(map[string]bool, len(types))
	out := make([]string, 0, len(types))
	for _, raw := range types {
		t := strings.TrimSpace(raw)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func toItemError(employeeID string, err error) ItemError {
	httpErr := apperror.ToHTTP(err)
	return ItemError{EmployeeID: employeeID, Code: httpErr.Code, Message: httpErr.Message}
}

package employee

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	employeeerrors "hris-onboarding/internal/employee/errors"
	"hris-onboarding/internal/shared/contextutil"
)

// Service is the read-only profile lookup onboarding depends on.
type Service interface {
	GetProfile(ctx context.Context, companyID, employeeID string) (Profile, error)
	GetProfiles(ctx context.Context, companyID string, employeeIDs []string) (map[string]Profile, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetProfile(ctx context.Context, companyID, employeeID string) (Profile, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return Profile{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByIDAndCompany(ctx, companyID, employeeID)
	if err != nil {
		mapped := mapRepositoryError(err)
		if mapped != employeeerrors.ErrEmployeeNotFound {
			s.logger.Error("get employee profile failed",
				zap.String("request_id", contextutil.GetRequestID(ctx)),
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
		}
		return Profile{}, mapped
	}

	return mapToProfile(*emp), nil
}

// GetProfiles silently skips ids that are malformed or unknown.
func (s *service) GetProfiles(ctx context.Context, companyID string, employeeIDs []string) (map[string]Profile, error) {
	valid := make([]string, 0, len(employeeIDs))
	for _, id := range employeeIDs {
		if _, err := uuid.Parse(id); err == nil {
			valid = append(valid, id)
		}
	}

	emps, err := s.repo.FindByIDs(ctx, companyID, valid)
	if err != nil {
		s.logger.Error("get employee profiles failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Int("count", len(valid)),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}

	out := make(map[string]Profile, len(emps))
	for _, e := range emps {
		p := mapToProfile(e)
		out[p.ID] = p
	}
	return out, nil
}

package catalog

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	catalogerrors "hris-onboarding/internal/catalog/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return catalogerrors.ErrWorkflowNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_onboarding_workflow_name" {
		return catalogerrors.ErrWorkflowNameExists
	}

	return err
}

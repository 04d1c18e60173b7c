package onboarding

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	onboardingerrors "hris-onboarding/internal/onboarding/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return onboardingerrors.ErrOnboardingNotFound
	}
	if errors.Is(err, errVersionConflict) {
		return onboardingerrors.ErrConcurrentModification
	}

	if isDuplicateRecord(err) {
		return onboardingerrors.ErrAlreadyStarted
	}

	return err
}

// isDuplicateRecord reports a second employee_onboarding row for one employee.
func isDuplicateRecord(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employee_onboarding_employee"
}

func mapDocumentError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return onboardingerrors.ErrDocumentNotFound
	}
	return mapRepositoryError(err)
}

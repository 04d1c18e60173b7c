package employee

import (
	"errors"

	"gorm.io/gorm"

	employeeerrors "hris-onboarding/internal/employee/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return err
}

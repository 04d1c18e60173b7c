package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// employee_ids -> Employee Ids
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		// only the first failing field is reported
		e := errs[0]

		// json tag name thanks to RegisterTagNameFunc in Init()
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		case "min", "max":
			return boundField(field, e)
		default:
			return InvalidField(field)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}

// boundField words min/max failures by kind: item count for slices, length for strings.
func boundField(field string, e validator.FieldError) *AppError {
	bound := "at least"
	if e.Tag() == "max" {
		bound = "at most"
	}

	var msg string
	switch e.Kind().String() {
	case "slice", "array", "map":
		msg = fmt.Sprintf("%s must contain %s %s items", field, bound, e.Param())
	case "string":
		msg = fmt.Sprintf("%s must be %s %s characters", field, bound, e.Param())
	default:
		msg = fmt.Sprintf("%s must be %s %s", field, bound, e.Param())
	}
	return Derive(ErrInvalidInput, msg, map[string]string{"field": field, "rule": e.Tag(), "limit": e.Param()})
}

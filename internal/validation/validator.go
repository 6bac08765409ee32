package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"banking-reports/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with the report query rules
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance     *Validator
	instanceOnce sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	instanceOnce.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("report_date", validateReportDate)
	_ = v.RegisterValidation("account_type", oneOfFold(models.AccountTypes))
	_ = v.RegisterValidation("loan_type", oneOfFold(models.LoanTypes))
	_ = v.RegisterValidation("segment", oneOfFold(models.Segments))

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns validator.ValidationErrors on failure
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Validate lets the Validator serve as an echo.Validator
func (v *Validator) Validate(i interface{}) error {
	return v.Struct(i)
}

// validateReportDate accepts calendar dates in YYYY-MM-DD form
func validateReportDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

func oneOfFold(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := strings.ToLower(strings.TrimSpace(fl.Field().String()))
		return slices.Contains(allowed, value)
	}
}

// FieldMessages flattens validation errors into field -> message pairs.
// It returns nil when err carries no field errors.
func FieldMessages(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}
	messages := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages[fieldErr.Field()] = FormatFieldError(fieldErr)
	}
	return messages
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "report_date":
		return "must be a date in YYYY-MM-DD format"
	case "account_type":
		return fmt.Sprintf("must be one of: %s", strings.Join(models.AccountTypes, ", "))
	case "loan_type":
		return fmt.Sprintf("must be one of: %s", strings.Join(models.LoanTypes, ", "))
	case "segment":
		return fmt.Sprintf("must be one of: %s", strings.Join(models.Segments, ", "))
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}

package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/classpoint/school-service/internal/models"
)

type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

// BusinessValidator handles business rule validation
type BusinessValidator struct {
	validate *validator.Validate
}

// NewBusinessValidator creates a new business validator
func NewBusinessValidator() *BusinessValidator {
	validate := validator.New()

	// Report json tag names instead of Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	bv := &BusinessValidator{validate: validate}
	bv.registerBusinessRules()

	return bv
}

// Validate validates business rules for any struct
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	err := bv.validate.Struct(s)
	if err != nil {
		return bv.toValidationErrors(err)
	}
	return nil
}

// ValidateAttendanceBatch validates a full roll-call submission: the struct
// rules plus cross-record checks a tag cannot express.
func (bv *BusinessValidator) ValidateAttendanceBatch(req *AttendanceBatchRequest) ValidationErrors {
	errors := bv.Validate(req)

	seen := make(map[uint]bool, len(req.Records))
	for i, record := range req.Records {
		if seen[record.StudentID] {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("records[%d].student_id", i),
				Message: "appears more than once in the batch",
				Value:   record.StudentID,
				Rule:    "unique_student",
			})
		}
		seen[record.StudentID] = true
	}

	return errors
}

// ValidateFees validates a fee record and rejects client-supplied totals that
// contradict the components.
func (bv *BusinessValidator) ValidateFees(req *FeesRequest) ValidationErrors {
	return bv.Validate(req)
}

func (bv *BusinessValidator) toValidationErrors(err error) ValidationErrors {
	var errors ValidationErrors

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "", Message: err.Error()}}
	}

	for _, fieldErr := range validationErrors {
		errors = append(errors, ValidationError{
			Field:   fieldErr.Field(),
			Message: bv.getErrorMessage(fieldErr),
			Value:   fieldErr.Value(),
			Rule:    fieldErr.Tag(),
		})
	}

	return errors
}

// registerBusinessRules registers custom business rule validators
func (bv *BusinessValidator) registerBusinessRules() {
	// Roll-call status enum
	bv.validate.RegisterValidation("attendance_status", func(fl validator.FieldLevel) bool {
		return models.ValidStatus(models.AttendanceStatus(fl.Field().String()))
	})

	// Fee components are amounts, never negative
	bv.validate.RegisterValidation("fee_amount", func(fl validator.FieldLevel) bool {
		return fl.Field().Float() >= 0
	})

	// Exam marks are percentages
	bv.validate.RegisterValidation("exam_marks", func(fl validator.FieldLevel) bool {
		marks := fl.Field().Int()
		return marks >= 0 && marks <= 100
	})

	// Grade labels like "10" or "10-A"
	bv.validate.RegisterValidation("grade_label", func(fl validator.FieldLevel) bool {
		label := strings.TrimSpace(fl.Field().String())
		return label != "" && len(label) <= 20
	})
}

// getErrorMessage returns user-friendly error messages
func (bv *BusinessValidator) getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "email":
		return "must be a valid email address"
	case "attendance_status":
		return "must be Present, Absent, or Absent with apology"
	case "fee_amount":
		return "must not be negative"
	case "exam_marks":
		return "must be between 0 and 100"
	case "grade_label":
		return "must be a non-empty grade label"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("validation failed for rule '%s'", err.Tag())
	}
}

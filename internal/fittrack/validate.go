package fittrack

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationCode classifies a validation failure.
type ValidationCode string

const (
	CodeOutOfRange    ValidationCode = "OUT_OF_RANGE"
	CodeInvalidEnum   ValidationCode = "INVALID_ENUM"
	CodeInvalidFormat ValidationCode = "INVALID_FORMAT"
)

// ValidationError is a single field-level validation failure. When several
// fields are invalid, the first error in struct field order is reported, so
// the failure picked is deterministic.
type ValidationError struct {
	Field   string
	Code    ValidationCode
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var hhmmRegex = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report field names by their json tag
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "rpe", func(fl validator.FieldLevel) bool {
		return IntensityLevel(fl.Field().String()).Valid()
	})
	mustRegister(v, "response_format", func(fl validator.FieldLevel) bool {
		return ResponseFormat(fl.Field().String()).Valid()
	})
	mustRegister(v, "exercise_category", func(fl validator.FieldLevel) bool {
		return ExerciseCategory(fl.Field().String()).Valid()
	})
	mustRegister(v, "hhmm", func(fl validator.FieldLevel) bool {
		return hhmmRegex.MatchString(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %s", tag, err))
	}
}

// Validate checks one of the five input shapes against its struct tags and
// returns the first failure as a *ValidationError.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return fmt.Errorf("validate input: %w", err)
	}
	return toValidationError(validationErrs[0])
}

func toValidationError(fieldErr validator.FieldError) *ValidationError {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "rpe", "response_format", "exercise_category", "oneof":
		return &ValidationError{
			Field:   field,
			Code:    CodeInvalidEnum,
			Message: fmt.Sprintf("%s has an invalid value %q", field, fieldErr.Value()),
		}
	case "hhmm":
		return &ValidationError{
			Field:   field,
			Code:    CodeInvalidFormat,
			Message: fmt.Sprintf("%s must match HH:MM (24-hour)", field),
		}
	case "gte", "lte", "min", "max", "required":
		return &ValidationError{
			Field:   field,
			Code:    CodeOutOfRange,
			Message: rangeMessage(fieldErr),
		}
	default:
		return &ValidationError{
			Field:   field,
			Code:    CodeOutOfRange,
			Message: fmt.Sprintf("%s is invalid", field),
		}
	}
}

func rangeMessage(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fieldErr.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", field, fieldErr.Param())
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
	case "max":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fieldErr.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
	case "required":
		return fmt.Sprintf("%s must not be empty", field)
	}
	return fmt.Sprintf("%s is out of range", field)
}

// Normalize trims string fields and fills defaults, then the input is ready
// for Validate. One method per input shape, pointer receivers mutate in place.

func (in *LogWorkoutInput) Normalize() {
	in.ExerciseName = strings.TrimSpace(in.ExerciseName)
	in.Notes = strings.TrimSpace(in.Notes)
	if in.ResponseFormat == "" {
		in.ResponseFormat = FormatMarkdown
	}
}

func (in *CalculateHydrationInput) Normalize() {
	if in.AmbientTempF == 0 {
		in.AmbientTempF = 72
	}
	if in.SweatRateLbsPerHour == 0 {
		in.SweatRateLbsPerHour = 2.5
	}
	if in.ResponseFormat == "" {
		in.ResponseFormat = FormatMarkdown
	}
}

func (in *LogNutritionInput) Normalize() {
	in.MealTime = strings.TrimSpace(in.MealTime)
	in.MealDescription = strings.TrimSpace(in.MealDescription)
	if in.ResponseFormat == "" {
		in.ResponseFormat = FormatMarkdown
	}
}

func (in *GetExerciseLibraryInput) Normalize() {
	in.SearchTerm = strings.TrimSpace(in.SearchTerm)
	if in.ResponseFormat == "" {
		in.ResponseFormat = FormatMarkdown
	}
}

func (in *GetRehabProtocolInput) Normalize() {
	in.Condition = strings.TrimSpace(in.Condition)
	if in.ResponseFormat == "" {
		in.ResponseFormat = FormatMarkdown
	}
}

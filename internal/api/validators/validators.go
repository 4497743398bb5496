package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"travelplanner/internal/catalog"
	"travelplanner/internal/planner"
)

// Register adds the trip form rules to v.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("budgetstep", budgetStep); err != nil {
		return fmt.Errorf("register budgetstep: %w", err)
	}
	if err := v.RegisterValidation("interest", interestTag); err != nil {
		return fmt.Errorf("register interest: %w", err)
	}
	return nil
}

// RegisterWithGin installs the rules on gin's default binding validator.
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return Register(v)
}

func budgetStep(fl validator.FieldLevel) bool {
	return fl.Field().Int()%planner.BudgetStep == 0
}

func interestTag(fl validator.FieldLevel) bool {
	_, ok := catalog.ParseInterest(fl.Field().String())
	return ok
}

// Describe turns binding errors into one readable sentence.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request format"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeField(fe))
	}
	return strings.Join(msgs, "; ")
}

func describeField(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		if field == "interests" {
			return "select at least one interest"
		}
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "budgetstep":
		return fmt.Sprintf("budget must be a multiple of %d", planner.BudgetStep)
	case "interest":
		return fmt.Sprintf("unknown interest %q", fe.Value())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

package planner

import (
	"fmt"
	"strings"

	"travelplanner/internal/catalog"
	"travelplanner/pkg/utils"
)

const (
	MinDays       = 1
	MaxDays       = 7
	MinBudget     = 1000
	BudgetStep    = 500
	DefaultDays   = 3
	DefaultBudget = 5000
)

// DayOptions lists the trip lengths offered by the form.
func DayOptions() []int {
	out := make([]int, 0, MaxDays-MinDays+1)
	for d := MinDays; d <= MaxDays; d++ {
		out = append(out, d)
	}
	return out
}

// Normalize trims the free-text fields.
func (f TripForm) Normalize() TripForm {
	f.City = strings.TrimSpace(f.City)
	tags := make([]string, 0, len(f.Interests))
	for _, tag := range f.Interests {
		if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
			tags = append(tags, tag)
		}
	}
	f.Interests = tags
	return f
}

// Validate is the submit gate: nothing reaches the sampler unless it passes.
func (f TripForm) Validate() error {
	if strings.TrimSpace(f.City) == "" {
		return fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}
	if f.Days < MinDays || f.Days > MaxDays {
		return fmt.Errorf("%w: days must be between %d and %d", utils.ErrInvalidInput, MinDays, MaxDays)
	}
	if f.Budget < MinBudget || f.Budget%BudgetStep != 0 {
		return fmt.Errorf("%w: budget must be at least %d in steps of %d", utils.ErrInvalidInput, MinBudget, BudgetStep)
	}
	if len(f.Interests) == 0 {
		return fmt.Errorf("%w: select at least one interest", utils.ErrInvalidInput)
	}
	for _, tag := range f.Interests {
		if _, ok := catalog.ParseInterest(tag); !ok {
			return fmt.Errorf("%w: unknown interest %q", utils.ErrInvalidInput, tag)
		}
	}
	return nil
}

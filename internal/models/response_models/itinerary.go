package response_models

import "travelplanner/internal/catalog"

type Activity struct {
	Place    string           `json:"place" yaml:"place"`
	Time     string           `json:"time" yaml:"time"`
	Cost     float64          `json:"cost" yaml:"cost"`
	Note     string           `json:"note" yaml:"note"`
	Category catalog.Interest `json:"category" yaml:"category"`
}

type DayPlan struct {
	Day        int        `json:"day" yaml:"day"`
	Activities []Activity `json:"activities" yaml:"activities"`
}

type Itinerary struct {
	City           string             `json:"city" yaml:"city"`
	Days           []DayPlan          `json:"days" yaml:"days"`
	EstimatedTotal float64            `json:"estimatedTotal" yaml:"estimatedTotal"`
	Interests      []catalog.Interest `json:"interests" yaml:"interests"`
}

// DayCost sums the activity costs of a single day.
func (d DayPlan) DayCost() float64 {
	total := 0.0
	for _, a := range d.Activities {
		total += a.Cost
	}
	return total
}

type InterestResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type FormDefaultsResponse struct {
	Days       int                `json:"days"`
	Budget     int                `json:"budget"`
	MinBudget  int                `json:"min_budget"`
	BudgetStep int                `json:"budget_step"`
	DayOptions []int              `json:"day_options"`
	Interests  []InterestResponse `json:"interests"`
}

package services

import (
	"math"

	"travelplanner/internal/catalog"
	"travelplanner/internal/models/response_models"
)

// Rand is the randomness the sampler draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

const (
	minActivitiesPerDay = 3
	maxActivitiesPerDay = 4
	costPerActivitySlot = 400
	maxPlaceAttempts    = 10
)

var timeSlots = []string{
	"9:00–11:00 AM",
	"11:30 AM–1:00 PM",
	"2:00–4:00 PM",
	"4:30–6:30 PM",
	"7:00–9:00 PM",
}

// TargetActivityCount is the number of slots attempted for a day with the
// given allowance.
func TargetActivityCount(dailyBudget float64) int {
	n := math.Floor(dailyBudget / costPerActivitySlot)
	return int(math.Min(maxActivitiesPerDay, math.Max(minActivitiesPerDay, n)))
}

func slotTime(i int) string {
	if i < len(timeSlots) {
		return timeSlots[i]
	}
	return timeSlots[len(timeSlots)-1]
}

// GenerateItinerary samples a day-by-day plan. Each day gets budget/days to
// spend with no carry-over; an activity's cost is clamped to what is left of
// that allowance. A slot whose place draws keep colliding with places already
// used that day is dropped, so a day may hold fewer than the target count.
func GenerateItinerary(
	rng Rand,
	cat catalog.Catalog,
	city string,
	days int,
	budget float64,
	interests []catalog.Interest,
) response_models.Itinerary {
	if len(interests) == 0 {
		interests = []catalog.Interest{catalog.DefaultInterest}
	}

	plans := make([]response_models.DayPlan, 0, max(days, 0))
	totalCost := 0.0

	for day := 1; day <= days; day++ {
		dailyBudget := budget / float64(days)
		dailyCost := 0.0
		used := make(map[string]bool)
		target := TargetActivityCount(dailyBudget)
		activities := make([]response_models.Activity, 0, target)

		for slot := 0; slot < target; slot++ {
			interest := interests[rng.IntN(len(interests))]
			entries := cat.Entries(interest)
			if len(entries) == 0 {
				entries = catalog.Static().Entries(catalog.DefaultInterest)
			}

			var picked catalog.Entry
			for attempt := 0; attempt < maxPlaceAttempts; attempt++ {
				picked = entries[rng.IntN(len(entries))]
				if !used[picked.Place] {
					break
				}
			}
			if used[picked.Place] {
				continue
			}
			used[picked.Place] = true

			cost := math.Max(0, math.Min(picked.Cost, dailyBudget-dailyCost))
			activities = append(activities, response_models.Activity{
				Place:    picked.Place,
				Time:     slotTime(slot),
				Cost:     cost,
				Note:     picked.Note,
				Category: interest,
			})
			dailyCost += cost
		}

		plans = append(plans, response_models.DayPlan{Day: day, Activities: activities})
		totalCost += dailyCost
	}

	return response_models.Itinerary{
		City:           city,
		Days:           plans,
		EstimatedTotal: math.Min(totalCost, budget),
		Interests:      append([]catalog.Interest(nil), interests...),
	}
}

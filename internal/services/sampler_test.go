package services

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelplanner/internal/catalog"
	"travelplanner/internal/models/response_models"
)

// scriptedRand replays a fixed sequence of draws.
type scriptedRand struct {
	t   *testing.T
	seq []int
	pos int
}

func (s *scriptedRand) IntN(n int) int {
	s.t.Helper()
	if s.pos >= len(s.seq) {
		s.t.Fatalf("scripted rand exhausted after %d draws", s.pos)
	}
	v := s.seq[s.pos]
	s.pos++
	if v < 0 || v >= n {
		s.t.Fatalf("draw %d: value %d out of range [0,%d)", s.pos, v, n)
	}
	return v
}

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestTargetActivityCount(t *testing.T) {
	assert.Equal(t, 3, TargetActivityCount(0))
	assert.Equal(t, 3, TargetActivityCount(1000))
	assert.Equal(t, 3, TargetActivityCount(1599))
	assert.Equal(t, 4, TargetActivityCount(1600))
	assert.Equal(t, 4, TargetActivityCount(1e9))
}

func TestGenerateItinerary_ClampsToDailyAllowance(t *testing.T) {
	rng := &scriptedRand{t: t, seq: []int{
		1, 3,       // adventure, Paragliding
		0, 0,       // heritage, Historic Fort
		0, 0, 0, 1, // heritage, two collisions then Ancient Temple
	}}

	got := GenerateItinerary(rng, catalog.Static(), "Tokyo", 1, 1000,
		[]catalog.Interest{catalog.Heritage, catalog.Adventure})

	want := response_models.Itinerary{
		City: "Tokyo",
		Days: []response_models.DayPlan{{
			Day: 1,
			Activities: []response_models.Activity{
				{Place: "Paragliding", Time: "9:00–11:00 AM", Cost: 1000, Note: "Weather dependent, book in advance", Category: catalog.Adventure},
				{Place: "Historic Fort", Time: "11:30 AM–1:00 PM", Cost: 0, Note: "Best visited early morning to avoid crowds", Category: catalog.Heritage},
				{Place: "Ancient Temple", Time: "2:00–4:00 PM", Cost: 0, Note: "Dress modestly and remove shoes", Category: catalog.Heritage},
			},
		}},
		EstimatedTotal: 1000,
		Interests:      []catalog.Interest{catalog.Heritage, catalog.Adventure},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("itinerary mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, len(rng.seq), rng.pos)
}

func TestGenerateItinerary_DropsSlotAfterTenCollisions(t *testing.T) {
	seq := []int{0, 0}                  // Local Street Food Market
	seq = append(seq, 0)                // slot 1 interest
	seq = append(seq, repeat(0, 10)...) // ten collisions, slot dropped
	seq = append(seq, 0, 1, 0, 2)       // Traditional Restaurant, Cooking Class
	rng := &scriptedRand{t: t, seq: seq}

	got := GenerateItinerary(rng, catalog.Static(), "Paris", 1, 2000, []catalog.Interest{catalog.Food})

	require.Len(t, got.Days, 1)
	acts := got.Days[0].Activities
	require.Len(t, acts, 3)
	assert.Equal(t, "Local Street Food Market", acts[0].Place)
	assert.Equal(t, 400.0, acts[0].Cost)
	assert.Equal(t, "Traditional Restaurant", acts[1].Place)
	assert.Equal(t, "2:00–4:00 PM", acts[1].Time)
	assert.Equal(t, 800.0, acts[1].Cost)
	assert.Equal(t, "Cooking Class", acts[2].Place)
	assert.Equal(t, "4:30–6:30 PM", acts[2].Time)
	assert.Equal(t, 800.0, acts[2].Cost)
	assert.Equal(t, 2000.0, got.EstimatedTotal)
	assert.Equal(t, len(seq), rng.pos)
}

func TestGenerateItinerary_EmptyInterestsUseDefault(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	got := GenerateItinerary(rng, catalog.Static(), "Rome", 2, 3000, nil)

	assert.Equal(t, []catalog.Interest{catalog.Heritage}, got.Interests)
	for _, day := range got.Days {
		for _, a := range day.Activities {
			assert.Equal(t, catalog.Heritage, a.Category)
		}
	}
}

func TestGenerateItinerary_ZeroDays(t *testing.T) {
	got := GenerateItinerary(rand.New(rand.NewPCG(1, 2)), catalog.Static(), "Oslo", 0, 5000,
		[]catalog.Interest{catalog.Nature})
	assert.Empty(t, got.Days)
	assert.Equal(t, 0.0, got.EstimatedTotal)
}

func TestGenerateItinerary_SameSeedSameItinerary(t *testing.T) {
	interests := []catalog.Interest{catalog.Food, catalog.Nightlife, catalog.Culture}
	a := GenerateItinerary(rand.New(rand.NewPCG(42, 1)), catalog.Static(), "Lisbon", 5, 12000, interests)
	b := GenerateItinerary(rand.New(rand.NewPCG(42, 1)), catalog.Static(), "Lisbon", 5, 12000, interests)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("seeded runs differ (-a +b):\n%s", diff)
	}
}

func TestGenerateItinerary_Invariants(t *testing.T) {
	cases := []struct {
		city      string
		days      int
		budget    float64
		interests []catalog.Interest
	}{
		{"Paris", 3, 6000, []catalog.Interest{catalog.Food}},
		{"Tokyo", 1, 1000, []catalog.Interest{catalog.Heritage, catalog.Adventure}},
		{"Cusco", 7, 1000, []catalog.Interest{catalog.Adventure, catalog.Nature}},
		{"Berlin", 4, 50000, catalog.All()},
		{"Hanoi", 6, 7500, []catalog.Interest{catalog.Shopping, catalog.Photography, catalog.Nightlife}},
	}

	for _, tc := range cases {
		t.Run(tc.city, func(t *testing.T) {
			for seed := uint64(0); seed < 200; seed++ {
				rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
				it := GenerateItinerary(rng, catalog.Static(), tc.city, tc.days, tc.budget, tc.interests)
				assertItineraryInvariants(t, it, tc.days, tc.budget, tc.interests)
			}
		})
	}
}

func TestGenerateItinerary_FoodOnlyScenario(t *testing.T) {
	foodPlaces := map[string]bool{}
	for _, e := range catalog.Static().Entries(catalog.Food) {
		foodPlaces[e.Place] = true
	}

	for seed := uint64(0); seed < 100; seed++ {
		it := GenerateItinerary(rand.New(rand.NewPCG(seed, 3)), catalog.Static(), "Paris", 3, 6000,
			[]catalog.Interest{catalog.Food})

		require.Len(t, it.Days, 3)
		for _, day := range it.Days {
			assert.GreaterOrEqual(t, len(day.Activities), 1)
			assert.LessOrEqual(t, len(day.Activities), 4)
			assert.LessOrEqual(t, day.DayCost(), 2000.0+1e-9)
			for _, a := range day.Activities {
				assert.Equal(t, catalog.Food, a.Category)
				assert.True(t, foodPlaces[a.Place], a.Place)
			}
		}
		assert.LessOrEqual(t, it.EstimatedTotal, 6000.0)
	}
}

func TestGenerateItinerary_FoodOnlyFillsEveryDay(t *testing.T) {
	const days, budget = 3, 6000.0
	target := TargetActivityCount(budget / days)
	require.Equal(t, 4, target)

	// One interest draw then one distinct place draw per slot, so no slot collides.
	var seq []int
	for range days {
		for slot := range target {
			seq = append(seq, 0, slot)
		}
	}
	rng := &scriptedRand{t: t, seq: seq}

	it := GenerateItinerary(rng, catalog.Static(), "Paris", days, budget, []catalog.Interest{catalog.Food})

	require.Len(t, it.Days, days)
	food := catalog.Static().Entries(catalog.Food)
	for _, day := range it.Days {
		require.Len(t, day.Activities, target, "day %d", day.Day)
		for i, a := range day.Activities {
			assert.Equal(t, food[i].Place, a.Place)
			assert.Equal(t, catalog.Food, a.Category)
			assert.Equal(t, slotTime(i), a.Time)
		}
		assert.LessOrEqual(t, day.DayCost(), budget/days+1e-9)
	}
	assert.Equal(t, len(seq), rng.pos, "every scripted draw is consumed")
}

func assertItineraryInvariants(t *testing.T, it response_models.Itinerary, days int, budget float64, interests []catalog.Interest) {
	t.Helper()

	allowed := map[catalog.Interest]bool{}
	for _, i := range interests {
		allowed[i] = true
	}
	daily := budget / float64(days)

	require.Len(t, it.Days, days)
	for idx, day := range it.Days {
		assert.Equal(t, idx+1, day.Day)
		assert.LessOrEqual(t, len(day.Activities), TargetActivityCount(daily))

		seen := map[string]bool{}
		spent := 0.0
		for _, a := range day.Activities {
			assert.GreaterOrEqual(t, a.Cost, 0.0)
			assert.LessOrEqual(t, a.Cost, daily-spent+1e-9)
			spent += a.Cost
			assert.True(t, allowed[a.Category], "category %s not requested", a.Category)
			assert.False(t, seen[a.Place], "place %s repeated on day %d", a.Place, day.Day)
			seen[a.Place] = true
		}
	}
	assert.GreaterOrEqual(t, it.EstimatedTotal, 0.0)
	assert.LessOrEqual(t, it.EstimatedTotal, budget)
}

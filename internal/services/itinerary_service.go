package services

import (
	"context"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"travelplanner/internal/catalog"
	"travelplanner/internal/models/response_models"
	"travelplanner/internal/planner"
	"travelplanner/pkg/metrics"
)

type ItineraryServiceInterface interface {
	Generate(ctx context.Context, form planner.TripForm) (*response_models.Itinerary, error)
}

type ItineraryService struct {
	catalog catalog.Catalog
	latency time.Duration
	newRand func() Rand
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewItineraryService builds the generator. latency is the artificial wait
// before sampling; newRand may be nil to draw from a freshly seeded PCG on
// every call.
func NewItineraryService(
	cat catalog.Catalog,
	latency time.Duration,
	newRand func() Rand,
	m *metrics.Metrics,
	logger *zap.Logger,
) ItineraryServiceInterface {
	if newRand == nil {
		newRand = func() Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}
	return &ItineraryService{
		catalog: cat,
		latency: latency,
		newRand: newRand,
		metrics: m,
		logger:  logger,
	}
}

func (s *ItineraryService) Generate(ctx context.Context, form planner.TripForm) (*response_models.Itinerary, error) {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return nil, err
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	interests := catalog.ResolveInterests(form.Interests)
	itinerary := GenerateItinerary(s.newRand(), s.catalog, form.City, form.Days, float64(form.Budget), interests)

	s.observe(itinerary, float64(form.Budget)/float64(form.Days))
	s.logger.Info("itinerary generated",
		zap.String("city", itinerary.City),
		zap.Int("days", len(itinerary.Days)),
		zap.Int("budget", form.Budget),
		zap.Strings("interests", form.Interests),
		zap.Float64("estimated_total", itinerary.EstimatedTotal),
	)

	return &itinerary, nil
}

func (s *ItineraryService) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *ItineraryService) observe(it response_models.Itinerary, dailyBudget float64) {
	if s.metrics == nil {
		return
	}
	s.metrics.ItinerariesGenerated.Inc()
	target := TargetActivityCount(dailyBudget)
	for _, day := range it.Days {
		s.metrics.ActivitiesPerDay.Observe(float64(len(day.Activities)))
		if dropped := target - len(day.Activities); dropped > 0 {
			s.metrics.DroppedSlots.Add(float64(dropped))
			s.logger.Debug("day under-filled after place collisions",
				zap.Int("day", day.Day),
				zap.Int("dropped", dropped),
			)
		}
	}
}

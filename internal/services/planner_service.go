package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"travelplanner/internal/models/response_models"
	"travelplanner/internal/planner"
	"travelplanner/pkg/memcache"
	"travelplanner/pkg/metrics"
	"travelplanner/pkg/utils"
)

type PlannerServiceInterface interface {
	Start(ctx context.Context) (*response_models.SessionResponse, error)
	Get(ctx context.Context, sessionId string) (*response_models.SessionResponse, error)
	GetStarted(ctx context.Context, sessionId string) (*response_models.SessionResponse, error)
	Submit(ctx context.Context, sessionId string, form planner.TripForm) (*response_models.SessionResponse, error)
	Back(ctx context.Context, sessionId string) (*response_models.SessionResponse, error)
	CurrentItinerary(ctx context.Context, sessionId string) (*response_models.Itinerary, error)
}

type PlannerService struct {
	sessions    memcache.Store[planner.Session]
	itineraries ItineraryServiceInterface
	metrics     *metrics.Metrics
	logger      *zap.Logger
	now         func() time.Time
}

func NewPlannerService(
	sessions memcache.Store[planner.Session],
	itineraries ItineraryServiceInterface,
	m *metrics.Metrics,
	logger *zap.Logger,
) PlannerServiceInterface {
	return &PlannerService{
		sessions:    sessions,
		itineraries: itineraries,
		metrics:     m,
		logger:      logger,
		now:         time.Now,
	}
}

func (p *PlannerService) Start(ctx context.Context) (*response_models.SessionResponse, error) {
	session := planner.NewSession(p.now())
	p.sessions.Set(session.ID.String(), session)

	p.logger.Debug("planner session started", zap.String("session_id", session.ID.String()))
	return buildSessionResponse(session), nil
}

func (p *PlannerService) Get(ctx context.Context, sessionId string) (*response_models.SessionResponse, error) {
	key, err := sessionKey(sessionId)
	if err != nil {
		return nil, err
	}

	session, ok := p.sessions.Get(key)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return buildSessionResponse(session), nil
}

func (p *PlannerService) GetStarted(ctx context.Context, sessionId string) (*response_models.SessionResponse, error) {
	return p.apply(sessionId, planner.EventGetStarted, nil)
}

func (p *PlannerService) Back(ctx context.Context, sessionId string) (*response_models.SessionResponse, error) {
	return p.apply(sessionId, planner.EventBack, func(s *planner.Session) {
		s.Itinerary = nil
	})
}

// Submit runs the form through the gate, marks the session loading while the
// itinerary is generated, then moves it to results. A failed or cancelled
// generation leaves the session on the form.
func (p *PlannerService) Submit(ctx context.Context, sessionId string, form planner.TripForm) (*response_models.SessionResponse, error) {
	key, err := sessionKey(sessionId)
	if err != nil {
		return nil, err
	}

	form = form.Normalize()
	if err := form.Validate(); err != nil {
		p.record(planner.EventSubmit, "rejected")
		return nil, err
	}

	_, ok, err := p.sessions.Update(key, func(s *planner.Session) error {
		if s.Loading {
			return utils.ErrSubmissionInProgress
		}
		if _, err := planner.Transition(s.State, planner.EventSubmit); err != nil {
			return err
		}
		s.Loading = true
		s.Form = &form
		s.UpdatedAt = p.now()
		return nil
	})
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if err != nil {
		p.record(planner.EventSubmit, "rejected")
		return nil, err
	}

	itinerary, genErr := p.itineraries.Generate(ctx, form)

	session, ok, err := p.sessions.Update(key, func(s *planner.Session) error {
		s.Loading = false
		s.UpdatedAt = p.now()
		if genErr != nil {
			return nil
		}
		s.Itinerary = itinerary
		return s.Apply(planner.EventSubmit, p.now())
	})
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if genErr != nil {
		p.record(planner.EventSubmit, "failed")
		p.logger.Warn("itinerary generation failed",
			zap.String("session_id", key),
			zap.Error(genErr),
		)
		return nil, fmt.Errorf("generate itinerary: %w", genErr)
	}
	if err != nil {
		p.record(planner.EventSubmit, "rejected")
		return nil, err
	}

	p.record(planner.EventSubmit, "ok")
	return buildSessionResponse(session), nil
}

func (p *PlannerService) CurrentItinerary(ctx context.Context, sessionId string) (*response_models.Itinerary, error) {
	key, err := sessionKey(sessionId)
	if err != nil {
		return nil, err
	}

	session, ok := p.sessions.Get(key)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if session.State != planner.StateResults || session.Itinerary == nil {
		return nil, utils.ErrNoItinerary
	}
	return session.Itinerary, nil
}

func (p *PlannerService) apply(sessionId string, on planner.Event, mutate func(s *planner.Session)) (*response_models.SessionResponse, error) {
	key, err := sessionKey(sessionId)
	if err != nil {
		return nil, err
	}

	session, ok, err := p.sessions.Update(key, func(s *planner.Session) error {
		if s.Loading {
			return utils.ErrSubmissionInProgress
		}
		if err := s.Apply(on, p.now()); err != nil {
			return err
		}
		if mutate != nil {
			mutate(s)
		}
		return nil
	})
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if err != nil {
		p.record(on, "rejected")
		return nil, err
	}

	p.record(on, "ok")
	return buildSessionResponse(session), nil
}

func (p *PlannerService) record(on planner.Event, outcome string) {
	if p.metrics == nil {
		return
	}
	p.metrics.SessionTransitions.WithLabelValues(on.String(), outcome).Inc()
}

func sessionKey(sessionId string) (string, error) {
	id, err := uuid.Parse(sessionId)
	if err != nil {
		return "", fmt.Errorf("%w: malformed session id", utils.ErrInvalidInput)
	}
	return id.String(), nil
}

func buildSessionResponse(s planner.Session) *response_models.SessionResponse {
	out := &response_models.SessionResponse{
		ID:        s.ID.String(),
		State:     s.State.String(),
		Loading:   s.Loading,
		Itinerary: s.Itinerary,
		CreatedAt: utils.FormatRFC3339(s.CreatedAt),
		UpdatedAt: utils.FormatRFC3339(s.UpdatedAt),
	}
	if s.Form != nil {
		out.Form = &response_models.TripFormResponse{
			City:      s.Form.City,
			Days:      s.Form.Days,
			Budget:    s.Form.Budget,
			Interests: append([]string(nil), s.Form.Interests...),
		}
	}
	return out
}

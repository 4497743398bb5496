package planner

import (
	"time"

	"github.com/google/uuid"

	"travelplanner/internal/models/response_models"
)

// Session is the server-held state of one visitor's trip through the flow.
type Session struct {
	ID        uuid.UUID
	State     State
	Loading   bool
	Form      *TripForm
	Itinerary *response_models.Itinerary
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TripForm is what the traveler filled in.
type TripForm struct {
	City      string
	Days      int
	Budget    int
	Interests []string
}

func NewSession(now time.Time) Session {
	return Session{
		ID:        uuid.New(),
		State:     StateHero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply moves the session along on, stamping UpdatedAt when it succeeds.
func (s *Session) Apply(on Event, now time.Time) error {
	next, err := Transition(s.State, on)
	if err != nil {
		return err
	}
	s.State = next
	s.UpdatedAt = now
	return nil
}

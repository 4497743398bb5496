package request_models

import "travelplanner/internal/planner"

type TripFormRequest struct {
	City      string   `json:"city" binding:"required"`
	Days      int      `json:"days" binding:"required,min=1,max=7"`
	Budget    int      `json:"budget" binding:"required,min=1000,budgetstep"`
	Interests []string `json:"interests" binding:"required,min=1,dive,interest"`
}

func (r TripFormRequest) ToTripForm() planner.TripForm {
	return planner.TripForm{
		City:      r.City,
		Days:      r.Days,
		Budget:    r.Budget,
		Interests: append([]string(nil), r.Interests...),
	}.Normalize()
}

package services

import (
	"context"

	"travelplanner/internal/catalog"
	"travelplanner/internal/models/response_models"
	"travelplanner/internal/planner"
)

type TagServiceInterface interface {
	GetAllTags(ctx context.Context) []response_models.InterestResponse
	GetFormDefaults(ctx context.Context) response_models.FormDefaultsResponse
}

type TagService struct{}

func NewTagService() TagServiceInterface {
	return &TagService{}
}

func (t *TagService) GetAllTags(ctx context.Context) []response_models.InterestResponse {
	interests := catalog.All()
	out := make([]response_models.InterestResponse, 0, len(interests))
	for _, i := range interests {
		out = append(out, response_models.InterestResponse{
			ID:    i.String(),
			Label: i.Label(),
			Icon:  i.Icon(),
		})
	}
	return out
}

func (t *TagService) GetFormDefaults(ctx context.Context) response_models.FormDefaultsResponse {
	return response_models.FormDefaultsResponse{
		Days:       planner.DefaultDays,
		Budget:     planner.DefaultBudget,
		MinBudget:  planner.MinBudget,
		BudgetStep: planner.BudgetStep,
		DayOptions: planner.DayOptions(),
		Interests:  t.GetAllTags(ctx),
	}
}

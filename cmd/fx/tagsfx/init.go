package tagsfx

import (
	"go.uber.org/fx"

	"travelplanner/internal/services"
)

var Module = fx.Provide(
	provideTagsService)

func provideTagsService() services.TagServiceInterface {
	return services.NewTagService()
}

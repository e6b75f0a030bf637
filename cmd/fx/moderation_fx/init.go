package moderation_fx

import (
	"go.uber.org/fx"

	"royalnano/internal/api/controllers"
	"royalnano/internal/repositories"
	"royalnano/internal/services"
)

var Module = fx.Provide(
	provideModerationService, provideAdminReviewController,
)

func provideModerationService(reviewRepo repositories.ReviewRepositoryInterface) services.ModerationServiceInterface {
	return services.NewModerationService(reviewRepo)
}

func provideAdminReviewController(
	queryService services.ReviewQueryServiceInterface,
	moderationService services.ModerationServiceInterface,
) *controllers.AdminReviewController {
	return controllers.NewAdminReviewController(queryService, moderationService)
}

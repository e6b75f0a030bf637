package review_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"royalnano/internal/api/controllers"
	"royalnano/internal/repositories"
	"royalnano/internal/services"
	mem "royalnano/pkg/memcache"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService, provideReviewQueryService, provideReviewController,
)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepositoryInterface {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepositoryInterface,
	limiter mem.RateLimiter,
	captcha services.CaptchaVerifierInterface,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, limiter, captcha)
}

func provideReviewQueryService(
	reviewRepo repositories.ReviewRepositoryInterface,
	cache mem.ResponseCache,
) services.ReviewQueryServiceInterface {
	return services.NewReviewQueryService(reviewRepo, cache)
}

func provideReviewController(
	reviewService services.ReviewServiceInterface,
	queryService services.ReviewQueryServiceInterface,
) *controllers.ReviewController {
	return controllers.NewReviewController(reviewService, queryService)
}

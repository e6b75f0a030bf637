package services

import (
	"context"
	"fmt"
	"log"

	"royalnano/internal/models/db_models"
	"royalnano/internal/models/request_models"
	"royalnano/internal/repositories"
	mem "royalnano/pkg/memcache"
	"royalnano/pkg/utils"
)

type ReviewServiceInterface interface {
	SubmitReview(ctx context.Context, clientIP string, req request_models.SubmitReviewRequest) (*db_models.Review, error)
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepositoryInterface
	limiter    mem.RateLimiter
	captcha    CaptchaVerifierInterface
}

func NewReviewService(
	reviewRepo repositories.ReviewRepositoryInterface,
	limiter mem.RateLimiter,
	captcha CaptchaVerifierInterface,
) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo: reviewRepo,
		limiter:    limiter,
		captcha:    captcha,
	}
}

// SubmitReview runs the public write path: rate limit, validate, captcha,
// persist. The limiter records the attempt at the first step, so quota is
// consumed even when a later step rejects the request.
func (s *ReviewService) SubmitReview(ctx context.Context, clientIP string, req request_models.SubmitReviewRequest) (*db_models.Review, error) {
	if !s.limiter.Allow(clientIP) {
		return nil, utils.ErrRateLimited
	}

	validated, err := ValidateSubmission(req)
	if err != nil {
		return nil, err
	}

	if !s.captcha.Verify(ctx, req.CaptchaToken) {
		return nil, utils.ErrCaptchaFailed
	}

	if validated.Profane {
		// flagged content is still accepted at the default pending status
		log.Printf("profanity flag tripped for review from %s", clientIP)
	}

	review := &db_models.Review{
		Name:      validated.Name,
		Text:      validated.Text,
		Rating:    validated.Rating,
		PhotoURL:  validated.PhotoURL,
		Status:    db_models.ReviewStatusPending,
		CreatedIP: clientIP,
	}

	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return review, nil
}

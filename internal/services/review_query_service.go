package services

import (
	"context"
	"fmt"
	"strings"

	"royalnano/internal/models/db_models"
	"royalnano/internal/models/response_models"
	"royalnano/internal/repositories"
	mem "royalnano/pkg/memcache"
	"royalnano/pkg/utils"
)

const (
	publicLimitMax = 50
	adminLimitMax  = 100
)

// AdminListQuery carries the admin listing parameters: optional filters plus
// paging and sort.
type AdminListQuery struct {
	Filter repositories.ReviewFilter
	Page   int
	Limit  int
	Sort   string
}

type ReviewQueryServiceInterface interface {
	ListPublic(ctx context.Context, page, limit int, sort string, noCache bool) (*response_models.PagedReviews, error)
	ListAdmin(ctx context.Context, query AdminListQuery) (*response_models.PagedReviews, error)
}

type ReviewQueryService struct {
	reviewRepo repositories.ReviewRepositoryInterface
	cache      mem.ResponseCache
}

func NewReviewQueryService(reviewRepo repositories.ReviewRepositoryInterface, cache mem.ResponseCache) ReviewQueryServiceInterface {
	return &ReviewQueryService{
		reviewRepo: reviewRepo,
		cache:      cache,
	}
}

// ListPublic serves the approved-only listing through the response cache.
// noCache bypasses the cache on both read and write.
func (s *ReviewQueryService) ListPublic(ctx context.Context, page, limit int, sort string, noCache bool) (*response_models.PagedReviews, error) {
	page = clampPage(page)
	limit = clampLimit(limit, publicLimitMax)
	sortAsc := sortAscending(sort)

	key := cacheKey(page, limit, sortAsc)
	if !noCache {
		if cached, ok := s.cache.Get(key); ok {
			return cached.(*response_models.PagedReviews), nil
		}
	}

	filter := repositories.ReviewFilter{Status: db_models.ReviewStatusApproved}
	items, total, err := s.reviewRepo.FindReviews(ctx, filter, sortAsc, page, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	result := &response_models.PagedReviews{
		Items: items,
		Page:  page,
		Limit: limit,
		Total: total,
	}
	if !noCache {
		s.cache.Set(key, result)
	}
	return result, nil
}

// ListAdmin queries the store directly: no cache, no forced status filter.
func (s *ReviewQueryService) ListAdmin(ctx context.Context, query AdminListQuery) (*response_models.PagedReviews, error) {
	page := clampPage(query.Page)
	limit := clampLimit(query.Limit, adminLimitMax)

	items, total, err := s.reviewRepo.FindReviews(ctx, query.Filter, sortAscending(query.Sort), page, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.PagedReviews{
		Items: items,
		Page:  page,
		Limit: limit,
		Total: total,
	}, nil
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func clampLimit(limit, ceiling int) int {
	if limit < 1 {
		return 1
	}
	if limit > ceiling {
		return ceiling
	}
	return limit
}

func sortAscending(sort string) bool {
	return strings.ToLower(sort) == "created_at_asc"
}

func cacheKey(page, limit int, sortAsc bool) string {
	sort := "created_at_desc"
	if sortAsc {
		sort = "created_at_asc"
	}
	return fmt.Sprintf("%d|%d|%s", page, limit, sort)
}

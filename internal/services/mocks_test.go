package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"royalnano/internal/models/db_models"
	"royalnano/internal/repositories"
)

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) CreateReview(ctx context.Context, review *db_models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepository) FindReviews(ctx context.Context, filter repositories.ReviewFilter, sortAsc bool, page, limit int) ([]db_models.Review, int64, error) {
	args := m.Called(ctx, filter, sortAsc, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]db_models.Review), args.Get(1).(int64), args.Error(2)
}

func (m *mockReviewRepository) UpdateReviewStatus(ctx context.Context, id uuid.UUID, status db_models.ReviewStatus) (*db_models.Review, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Review), args.Error(1)
}

func (m *mockReviewRepository) DeleteReview(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockReviewRepository) BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, status db_models.ReviewStatus) (int64, error) {
	args := m.Called(ctx, ids, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReviewRepository) BulkDeleteReviews(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReviewRepository) CountByStatus(ctx context.Context, status db_models.ReviewStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReviewRepository) CountReviews(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockAdminRepository struct {
	mock.Mock
}

func (m *mockAdminRepository) FindByUsername(ctx context.Context, username string) (*db_models.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Admin), args.Error(1)
}

func (m *mockAdminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

type mockContactRepository struct {
	mock.Mock
}

func (m *mockContactRepository) CreateContact(ctx context.Context, contact *db_models.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *mockContactRepository) ListContacts(ctx context.Context, page, limit int) ([]db_models.Contact, int64, error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).([]db_models.Contact), args.Get(1).(int64), args.Error(2)
}

func (m *mockContactRepository) CountContacts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockContactRepository) CountContactsSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

// stubLimiter and stubCaptcha avoid mock ceremony for the two boolean
// collaborators on the submission path.
type stubLimiter struct {
	allow bool
	calls int
}

func (s *stubLimiter) Allow(clientKey string) bool {
	s.calls++
	return s.allow
}

type stubCaptcha struct {
	ok    bool
	calls int
}

func (s *stubCaptcha) Verify(ctx context.Context, token string) bool {
	s.calls++
	return s.ok
}

// stubCache is a pass-through ResponseCache backed by a plain map.
type stubCache struct {
	data map[string]interface{}
	sets int
	gets int
}

func newStubCache() *stubCache {
	return &stubCache{data: make(map[string]interface{})}
}

func (s *stubCache) Get(key string) (interface{}, bool) {
	s.gets++
	v, ok := s.data[key]
	return v, ok
}

func (s *stubCache) Set(key string, payload interface{}) {
	s.sets++
	s.data[key] = payload
}

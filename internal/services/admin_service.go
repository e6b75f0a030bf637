package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"royalnano/internal/models/db_models"
	"royalnano/internal/models/response_models"
	"royalnano/internal/repositories"
	"royalnano/pkg/utils"
)

type AdminServiceInterface interface {
	Login(ctx context.Context, username, password string) (*response_models.LoginResponse, error)
	Dashboard(ctx context.Context) (*response_models.DashboardResponse, error)
}

type AdminService struct {
	adminRepo   repositories.AdminRepositoryInterface
	reviewRepo  repositories.ReviewRepositoryInterface
	contactRepo repositories.ContactRepositoryInterface
}

func NewAdminService(
	adminRepo repositories.AdminRepositoryInterface,
	reviewRepo repositories.ReviewRepositoryInterface,
	contactRepo repositories.ContactRepositoryInterface,
) AdminServiceInterface {
	return &AdminService{
		adminRepo:   adminRepo,
		reviewRepo:  reviewRepo,
		contactRepo: contactRepo,
	}
}

func (s *AdminService) Login(ctx context.Context, username, password string) (*response_models.LoginResponse, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	if !admin.IsActive {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(admin.Password, password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(admin.ID, admin.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.adminRepo.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		log.Printf("Error updating last login for %s: %v", admin.Username, err)
	}
	admin.LastLogin = &now

	return &response_models.LoginResponse{Token: token, Admin: *admin}, nil
}

func (s *AdminService) Dashboard(ctx context.Context) (*response_models.DashboardResponse, error) {
	total, err := s.reviewRepo.CountReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	pending, err := s.reviewRepo.CountByStatus(ctx, db_models.ReviewStatusPending)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	approved, err := s.reviewRepo.CountByStatus(ctx, db_models.ReviewStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	rejected, err := s.reviewRepo.CountByStatus(ctx, db_models.ReviewStatusRejected)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	contacts, err := s.contactRepo.CountContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	recent, err := s.contactRepo.CountContactsSince(ctx, time.Now().Add(-7*24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.DashboardResponse{
		TotalReviews:    total,
		PendingReviews:  pending,
		ApprovedReviews: approved,
		RejectedReviews: rejected,
		TotalContacts:   contacts,
		RecentContacts:  recent,
	}, nil
}

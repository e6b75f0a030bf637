package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"royalnano/internal/models/db_models"
	"royalnano/internal/models/request_models"
	"royalnano/internal/repositories"
	"royalnano/pkg/utils"
)

type ContactServiceInterface interface {
	SubmitContact(ctx context.Context, req request_models.ContactRequest) (*db_models.Contact, error)
	ListContacts(ctx context.Context, page, limit int) ([]db_models.Contact, int64, error)
}

type ContactService struct {
	contactRepo repositories.ContactRepositoryInterface
	webhookURL  string
	client      *http.Client
}

func NewContactService(contactRepo repositories.ContactRepositoryInterface) ContactServiceInterface {
	return &ContactService{
		contactRepo: contactRepo,
		webhookURL:  os.Getenv("CRM_WEBHOOK_URL"),
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *ContactService) SubmitContact(ctx context.Context, req request_models.ContactRequest) (*db_models.Contact, error) {
	contact := &db_models.Contact{
		FullName:        req.FullName,
		PhoneNumber:     req.PhoneNumber,
		CarType:         req.CarType,
		CarModel:        req.CarModel,
		AdditionalNotes: req.AdditionalNotes,
		UTMSource:       req.UTMSource,
		UTMMedium:       req.UTMMedium,
		UTMCampaign:     req.UTMCampaign,
	}

	if err := s.contactRepo.CreateContact(ctx, contact); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	// best-effort CRM relay; a webhook failure never fails the submission
	if s.webhookURL != "" {
		go s.relayToCRM(contact)
	}

	return contact, nil
}

func (s *ContactService) ListContacts(ctx context.Context, page, limit int) ([]db_models.Contact, int64, error) {
	page = clampPage(page)
	limit = clampLimit(limit, adminLimitMax)
	contacts, total, err := s.contactRepo.ListContacts(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return contacts, total, nil
}

func (s *ContactService) relayToCRM(contact *db_models.Contact) {
	body, err := json.Marshal(contact)
	if err != nil {
		log.Printf("Error encoding CRM payload: %v", err)
		return
	}

	resp, err := s.client.Post(s.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("Error relaying contact %s to CRM: %v", contact.ID, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("CRM webhook returned %d for contact %s", resp.StatusCode, contact.ID)
	}
}

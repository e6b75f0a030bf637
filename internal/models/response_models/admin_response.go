package response_models

import "royalnano/internal/models/db_models"

type LoginResponse struct {
	Token string          `json:"token"`
	Admin db_models.Admin `json:"admin"`
}

type DashboardResponse struct {
	TotalReviews    int64 `json:"total_reviews"`
	PendingReviews  int64 `json:"pending_reviews"`
	ApprovedReviews int64 `json:"approved_reviews"`
	RejectedReviews int64 `json:"rejected_reviews"`
	TotalContacts   int64 `json:"total_contacts"`
	RecentContacts  int64 `json:"recent_contacts"`
}

package response_models

import "royalnano/internal/models/db_models"

// PagedReviews is the paginated listing payload. It is also the unit the
// public response cache stores, so identical queries within the TTL replay
// the exact same payload.
type PagedReviews struct {
	Items []db_models.Review `json:"items"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
	Total int64              `json:"total"`
}

// AdminReview is the moderation view of a review. It shadows the CreatedIP
// field so the submitter address shows up for admins while staying out of
// every public payload.
type AdminReview struct {
	db_models.Review
	CreatedIP string `json:"created_ip,omitempty"`
}

func NewAdminReview(review db_models.Review) AdminReview {
	return AdminReview{Review: review, CreatedIP: review.CreatedIP}
}

func NewAdminReviews(reviews []db_models.Review) []AdminReview {
	out := make([]AdminReview, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, NewAdminReview(review))
	}
	return out
}

// BulkResult reports aggregate effect counts only; ids with no matching
// record are skipped silently.
type BulkResult struct {
	Matched  int64 `json:"matched"`
	Modified int64 `json:"modified"`
}

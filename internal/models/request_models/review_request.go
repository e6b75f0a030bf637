package request_models

// SubmitReviewRequest is the raw public submission body. Rating stays untyped
// until validation: clients send numbers, numeric strings, or nothing at all,
// and the validator owns the coercion rules.
type SubmitReviewRequest struct {
	Name         string      `json:"name"`
	Text         string      `json:"text"`
	Rating       interface{} `json:"rating"`
	PhotoURL     string      `json:"photo_url"`
	CaptchaToken string      `json:"captcha_token"`
}

type UpdateReviewStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BulkReviewRequest drives both bulk moderation actions: status present means
// bulk status update, absent means bulk delete.
type BulkReviewRequest struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status"`
}

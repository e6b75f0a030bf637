package request_models

type ContactRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	PhoneNumber     string `json:"phone_number" binding:"required"`
	CarType         string `json:"car_type" binding:"required"`
	CarModel        string `json:"car_model" binding:"required"`
	AdditionalNotes string `json:"additional_notes"`
	UTMSource       string `json:"utm_source"`
	UTMMedium       string `json:"utm_medium"`
	UTMCampaign     string `json:"utm_campaign"`
}

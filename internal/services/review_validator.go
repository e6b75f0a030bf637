package services

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"royalnano/internal/models/request_models"
	"royalnano/pkg/utils"
)

// ValidatedReview is the typed output of submission validation. Raw request
// bodies never travel past this boundary.
type ValidatedReview struct {
	Name     string
	Text     string
	Rating   *float64
	PhotoURL string
	Profane  bool
}

// ValidateSubmission applies the acceptance rules in order, short-circuiting
// on the first failure, then sanitizes the accepted fields. The profanity
// flag is informational only; flagged reviews are accepted like any other.
func ValidateSubmission(req request_models.SubmitReviewRequest) (*ValidatedReview, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || utf8.RuneCountInString(req.Name) > 100 {
		return nil, utils.ErrInvalidName
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, utils.ErrInvalidText
	}

	rating, err := coerceRating(req.Rating)
	if err != nil {
		return nil, err
	}

	name = utils.SanitizeText(name)
	text = utils.SanitizeText(text)

	return &ValidatedReview{
		Name:     name,
		Text:     text,
		Rating:   rating,
		PhotoURL: req.PhotoURL,
		Profane:  utils.IsProfane(name) || utils.IsProfane(text),
	}, nil
}

// coerceRating accepts absent ratings, JSON numbers, and numeric strings.
// Any finite number in [1,5] passes, fractions included; out-of-range values
// are rejected, never clamped.
func coerceRating(raw interface{}) (*float64, error) {
	if raw == nil {
		return nil, nil
	}

	var value float64
	switch v := raw.(type) {
	case float64:
		value = v
	case int:
		value = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, utils.ErrInvalidRating
		}
		value = parsed
	default:
		return nil, utils.ErrInvalidRating
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, utils.ErrInvalidRating
	}
	if value < 1 || value > 5 {
		return nil, utils.ErrInvalidRating
	}

	return &value, nil
}

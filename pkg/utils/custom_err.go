package utils

import "errors"

var (
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidText        = errors.New("invalid text")
	ErrInvalidRating      = errors.New("invalid rating")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrEmptyIDs           = errors.New("ids required")
	ErrCaptchaFailed      = errors.New("captcha verification failed")
	ErrRateLimited        = errors.New("rate limit exceeded")
	ErrReviewNotFound     = errors.New("review not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")
)

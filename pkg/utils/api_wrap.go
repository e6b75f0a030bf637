package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type PagedAPIResponse struct {
	Success bool        `json:"success"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
	Total   int64       `json:"total"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondPaged(c *gin.Context, data interface{}, page, limit int, total int64) {
	c.JSON(http.StatusOK, PagedAPIResponse{
		Success: true,
		TraceID: c.GetString("trace_id"),
		Data:    data,
		Page:    page,
		Limit:   limit,
		Total:   total,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Success: false,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidName):
		RespondError(c, http.StatusBadRequest, "Invalid name")
	case errors.Is(err, ErrInvalidText):
		RespondError(c, http.StatusBadRequest, "Invalid text")
	case errors.Is(err, ErrInvalidRating):
		RespondError(c, http.StatusBadRequest, "Invalid rating")
	case errors.Is(err, ErrInvalidStatus):
		RespondError(c, http.StatusBadRequest, "Invalid status")
	case errors.Is(err, ErrEmptyIDs):
		RespondError(c, http.StatusBadRequest, "ids required")
	case errors.Is(err, ErrCaptchaFailed):
		RespondError(c, http.StatusBadRequest, "Captcha verification failed")
	case errors.Is(err, ErrRateLimited):
		RespondError(c, http.StatusTooManyRequests, "Too many requests. Please try later.")
	case errors.Is(err, ErrReviewNotFound):
		RespondError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid username or password.")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

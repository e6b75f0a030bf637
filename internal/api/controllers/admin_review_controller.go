package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"royalnano/internal/models/db_models"
	"royalnano/internal/models/request_models"
	"royalnano/internal/models/response_models"
	"royalnano/internal/repositories"
	"royalnano/internal/services"
	"royalnano/pkg/utils"
)

type AdminReviewController struct {
	queryService      services.ReviewQueryServiceInterface
	moderationService services.ModerationServiceInterface
}

func NewAdminReviewController(
	queryService services.ReviewQueryServiceInterface,
	moderationService services.ModerationServiceInterface,
) *AdminReviewController {
	return &AdminReviewController{
		queryService:      queryService,
		moderationService: moderationService,
	}
}

// ListReviews godoc
// @Summary List reviews for moderation
// @Description Get reviews in any status, with optional filters
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Exact status filter" Enums(pending, approved, rejected)
// @Param q query string false "Substring match against name or text"
// @Param from query string false "Creation date lower bound (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "Creation date upper bound (RFC 3339 or YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20) minimum(1) maximum(100)
// @Param sort query string false "Sort order" Enums(created_at_desc, created_at_asc)
// @Success 200 {object} utils.PagedAPIResponse
// @Router /admin/reviews [get]
func (a *AdminReviewController) ListReviews(c *gin.Context) {
	query := services.AdminListQuery{
		Filter: repositories.ReviewFilter{
			Status: db_models.ReviewStatus(c.Query("status")),
			Query:  c.Query("q"),
			From:   parseDateParam(c.Query("from")),
			To:     parseDateParam(c.Query("to")),
		},
		Page:  atoiOrDefault(c.DefaultQuery("page", "1"), 1),
		Limit: atoiOrDefault(c.DefaultQuery("limit", "20"), 20),
		Sort:  c.DefaultQuery("sort", "created_at_desc"),
	}

	result, err := a.queryService.ListAdmin(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondPaged(c, response_models.NewAdminReviews(result.Items), result.Page, result.Limit, result.Total)
}

// UpdateStatus godoc
// @Summary Update a review's moderation status
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body request_models.UpdateReviewStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/reviews/{id}/status [patch]
func (a *AdminReviewController) UpdateStatus(c *gin.Context) {
	var req request_models.UpdateReviewStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	review, err := a.moderationService.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAdminReview(*review), "Status updated")
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/reviews/{id} [delete]
func (a *AdminReviewController) DeleteReview(c *gin.Context) {
	if err := a.moderationService.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Deleted")
}

// BulkAction godoc
// @Summary Apply a bulk moderation action
// @Description Bulk status update when a status is supplied, bulk delete otherwise
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.BulkReviewRequest true "Review ids and optional status"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /admin/reviews/bulk [patch]
func (a *AdminReviewController) BulkAction(c *gin.Context) {
	var req request_models.BulkReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var (
		result interface{}
		err    error
	)
	if req.Status != "" {
		result, err = a.moderationService.BulkSetStatus(c.Request.Context(), req.IDs, req.Status)
	} else {
		result, err = a.moderationService.BulkDelete(c.Request.Context(), req.IDs)
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Bulk action applied")
}

// parseDateParam accepts RFC 3339 timestamps or bare dates; anything else is
// treated as an absent bound.
func parseDateParam(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

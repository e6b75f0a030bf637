package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"royalnano/internal/models/request_models"
	"royalnano/internal/services"
	"royalnano/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
	queryService  services.ReviewQueryServiceInterface
}

func NewReviewController(
	reviewService services.ReviewServiceInterface,
	queryService services.ReviewQueryServiceInterface,
) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
		queryService:  queryService,
	}
}

// ListReviews godoc
// @Summary List approved reviews
// @Description Get a paginated list of approved customer reviews
// @Tags Reviews
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(12) minimum(1) maximum(50)
// @Param sort query string false "Sort order" Enums(created_at_desc, created_at_asc)
// @Param nocache query string false "Set to 1 to bypass the response cache"
// @Success 200 {object} utils.PagedAPIResponse
// @Router /reviews [get]
func (r *ReviewController) ListReviews(c *gin.Context) {
	page := atoiOrDefault(c.DefaultQuery("page", "1"), 1)
	limit := atoiOrDefault(c.DefaultQuery("limit", "12"), 12)
	sort := c.DefaultQuery("sort", "created_at_desc")
	noCache := c.Query("nocache") == "1"

	c.Header("Cache-Control", "public, s-maxage=60, stale-while-revalidate=30")

	result, err := r.queryService.ListPublic(c.Request.Context(), page, limit, sort, noCache)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondPaged(c, result.Items, result.Page, result.Limit, result.Total)
}

// SubmitReview godoc
// @Summary Submit a review
// @Description Submit a customer review; held for moderation before it becomes visible
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.SubmitReviewRequest true "Review payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /reviews [post]
func (r *ReviewController) SubmitReview(c *gin.Context) {
	var req request_models.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	clientIP := utils.ClientIP(c.Request)
	review, err := r.reviewService.SubmitReview(c.Request.Context(), clientIP, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, review, "Review created")
}

func atoiOrDefault(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"royalnano/internal/models/request_models"
	"royalnano/internal/services"
	"royalnano/pkg/utils"
)

type ContactController struct {
	contactService services.ContactServiceInterface
}

func NewContactController(contactService services.ContactServiceInterface) *ContactController {
	return &ContactController{contactService: contactService}
}

// SubmitContact godoc
// @Summary Submit a contact lead
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body request_models.ContactRequest true "Contact payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /contact [post]
func (ct *ContactController) SubmitContact(c *gin.Context) {
	var req request_models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "All required fields are required: full_name, phone_number, car_type, car_model")
		return
	}

	contact, err := ct.contactService.SubmitContact(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contact, "Contact submitted successfully")
}

// ListContacts godoc
// @Summary List contact leads
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.PagedAPIResponse
// @Router /admin/contacts [get]
func (ct *ContactController) ListContacts(c *gin.Context) {
	page := atoiOrDefault(c.DefaultQuery("page", "1"), 1)
	limit := atoiOrDefault(c.DefaultQuery("limit", "20"), 20)

	contacts, total, err := ct.contactService.ListContacts(c.Request.Context(), page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondPaged(c, contacts, page, limit, total)
}

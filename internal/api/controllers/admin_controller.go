package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"royalnano/internal/models/request_models"
	"royalnano/internal/services"
	"royalnano/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{adminService: adminService}
}

// Login godoc
// @Summary Admin login
// @Description Authenticate an admin and return a bearer token
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /admin/login [post]
func (a *AdminController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Username and password are required.")
		return
	}

	result, err := a.adminService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Login successful")
}

// Dashboard godoc
// @Summary Admin dashboard stats
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/dashboard [get]
func (a *AdminController) Dashboard(c *gin.Context) {
	stats, err := a.adminService.Dashboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Dashboard fetched successfully")
}

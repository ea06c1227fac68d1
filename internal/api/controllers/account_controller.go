package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/julfkar-mu/khidmat/internal/models/request_models"
	"github.com/julfkar-mu/khidmat/internal/services"
	"github.com/julfkar-mu/khidmat/pkg/utils"
)

type AccountController struct {
	accountService services.AccountService
}

func NewAccountController(accountService services.AccountService) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Signup godoc
// @Summary Register an admin account
// @Description Create a master_admin or account_admin and return a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignupRequest true "Signup payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/signup [post]
func (a *AccountController) Signup(c *gin.Context) {
	var req request_models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.accountService.Signup(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{
		"token":     result.Token,
		"admin_id":  result.AdminID,
		"user_type": result.Role,
	}, "Account created successfully")
}

// Login godoc
// @Summary Login to an admin account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"token":     result.Token,
		"admin_id":  result.AdminID,
		"user_type": result.Role,
	}, "Login successful")
}

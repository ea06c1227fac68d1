package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/julfkar-mu/khidmat/internal/models/request_models"
	"github.com/julfkar-mu/khidmat/internal/services"
	"github.com/julfkar-mu/khidmat/pkg/utils"
)

type MemberController struct {
	memberService services.MemberService
}

func NewMemberController(memberService services.MemberService) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

func (m *MemberController) Register(c *gin.Context) {
	var req request_models.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	member, err := m.memberService.Register(c.Request.Context(), callerFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, member, "Member registered successfully")
}

func (m *MemberController) List(c *gin.Context) {
	members, err := m.memberService.List(c.Request.Context(), callerFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "Members fetched successfully")
}

func (m *MemberController) ToggleStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member ID")
		return
	}

	status, err := m.memberService.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Member status updated")
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/julfkar-mu/khidmat/internal/models/request_models"
	"github.com/julfkar-mu/khidmat/internal/services"
	"github.com/julfkar-mu/khidmat/pkg/utils"
)

type LedgerController struct {
	ledgerService services.LedgerService
}

func NewLedgerController(ledgerService services.LedgerService) *LedgerController {
	return &LedgerController{
		ledgerService: ledgerService,
	}
}

// RecordPayment godoc
// @Summary Record a membership-fee payment
// @Description Append an immutable payment event for a member
// @Tags Ledger
// @Accept json
// @Produce json
// @Param request body request_models.RecordPaymentRequest true "Payment payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments [post]
func (l *LedgerController) RecordPayment(c *gin.Context) {
	var req request_models.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	payment, err := l.ledgerService.RecordPayment(c.Request.Context(), callerFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, payment, "Payment recorded successfully")
}

func (l *LedgerController) ListPayments(c *gin.Context) {
	payments, err := l.ledgerService.ListPayments(c.Request.Context(), callerFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payments, "Payments fetched successfully")
}

func (l *LedgerController) RecordDonation(c *gin.Context) {
	var req request_models.RecordDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	donation, err := l.ledgerService.RecordDonation(c.Request.Context(), callerFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, donation, "Donation recorded successfully")
}

func (l *LedgerController) ListDonations(c *gin.Context) {
	donations, err := l.ledgerService.ListDonations(c.Request.Context(), callerFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, donations, "Donations fetched successfully")
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/julfkar-mu/khidmat/internal/services"
	"github.com/julfkar-mu/khidmat/pkg/utils"
)

type ReportController struct {
	reportService services.ReportService
}

func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// MonthlyCollection godoc
// @Summary Monthly collection series
// @Description Payment totals per month for the trailing window, most recent first, zero-filled
// @Tags Reports
// @Produce json
// @Param months query int false "Trailing window size (default 12)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reports/monthly-collection [get]
func (r *ReportController) MonthlyCollection(c *gin.Context) {
	series, err := r.reportService.MonthlyCollectionSeries(c.Request.Context(), callerFrom(c), monthsBackFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, series, "Monthly collection fetched successfully")
}

func (r *ReportController) MonthlyDonations(c *gin.Context) {
	series, err := r.reportService.MonthlyDonationSeries(c.Request.Context(), callerFrom(c), monthsBackFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, series, "Monthly donations fetched successfully")
}

func (r *ReportController) AdminPayments(c *gin.Context) {
	month, ok := monthFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid month format. Use YYYY-MM")
		return
	}

	reports, err := r.reportService.AdminPaymentBreakdown(c.Request.Context(), callerFrom(c), month)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reports, "Admin payments report fetched successfully")
}

func (r *ReportController) CollectionDetails(c *gin.Context) {
	month, ok := monthFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid month format. Use YYYY-MM")
		return
	}

	report, err := r.reportService.CollectionDetails(c.Request.Context(), callerFrom(c), month)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "Monthly collection details fetched successfully")
}

func (r *ReportController) DonationDetails(c *gin.Context) {
	month, ok := monthFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid month format. Use YYYY-MM")
		return
	}

	report, err := r.reportService.DonationDetails(c.Request.Context(), callerFrom(c), month)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "Monthly donation details fetched successfully")
}

// PoolBalance godoc
// @Summary Wallet balance
// @Description Total payments, total donations and their sum, recomputed from the full event history
// @Tags Reports
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reports/pool-balance [get]
func (r *ReportController) PoolBalance(c *gin.Context) {
	report, err := r.reportService.PoolBalance(c.Request.Context(), callerFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "Pool balance fetched successfully")
}

func (r *ReportController) PaidMembers(c *gin.Context) {
	month, ok := monthFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid month format. Use YYYY-MM")
		return
	}

	paid, err := r.reportService.PaidMembers(c.Request.Context(), callerFrom(c), month, requestedAdminFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, paid, "Paid members fetched successfully")
}

func (r *ReportController) UnpaidMembers(c *gin.Context) {
	month, ok := monthFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid month format. Use YYYY-MM")
		return
	}

	unpaid, err := r.reportService.UnpaidMembers(c.Request.Context(), callerFrom(c), month, requestedAdminFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, unpaid, "Unpaid members fetched successfully")
}

// ---- helpers ----

func monthsBackFrom(c *gin.Context) int {
	monthsStr := c.Query("months")
	if monthsStr == "" {
		return services.DefaultSeriesMonths
	}
	months, err := strconv.Atoi(monthsStr)
	if err != nil || months <= 0 {
		return services.DefaultSeriesMonths
	}
	return months
}

func requestedAdminFrom(c *gin.Context) int64 {
	adminStr := c.Query("admin_id")
	if adminStr == "" {
		return 0
	}
	adminID, err := strconv.ParseInt(adminStr, 10, 64)
	if err != nil {
		return 0
	}
	return adminID
}

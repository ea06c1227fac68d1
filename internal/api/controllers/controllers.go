package controllers

import (
	"github.com/gin-gonic/gin"

	dbm "github.com/julfkar-mu/khidmat/internal/models/db_models"
	"github.com/julfkar-mu/khidmat/internal/services"
	"github.com/julfkar-mu/khidmat/pkg/utils"
)

// callerFrom rebuilds the authenticated identity the JWT middleware
// stashed on the request context.
func callerFrom(c *gin.Context) services.Caller {
	return services.Caller{
		AdminID: c.GetInt64("admin_id"),
		Role:    dbm.AdminRole(c.GetString("role")),
	}
}

// monthFrom reads the optional ?month=YYYY-MM query parameter,
// defaulting to the current month in the report timezone.
func monthFrom(c *gin.Context) (utils.MonthKey, bool) {
	monthParam := c.Query("month")
	if monthParam == "" {
		return utils.CurrentMonthKey(), true
	}
	month, err := utils.ParseMonthKey(monthParam)
	if err != nil {
		return "", false
	}
	return month, true
}

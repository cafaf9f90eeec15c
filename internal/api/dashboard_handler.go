package api

import (
	"alcyxob/fittrack/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary Home screen rollup
// @Description Streaks, weekly adherence, nutrition, body metrics and daily goals as of a day.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day to report on (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.Dashboard
// @Failure 400 {object} gin.H "Invalid date"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, ok := queryDate(c, "date")
	if !ok {
		return
	}
	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err, "Failed to build dashboard.")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// GetWeeklyReport godoc
// @Summary Seven day report
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param date query string false "Last day of the week (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.WeeklyReport
// @Router /reports/weekly [get]
func (h *DashboardHandler) GetWeeklyReport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, ok := queryDate(c, "date")
	if !ok {
		return
	}
	report, err := h.dashboardService.WeeklyReport(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err, "Failed to build weekly report.")
		return
	}
	c.JSON(http.StatusOK, report)
}

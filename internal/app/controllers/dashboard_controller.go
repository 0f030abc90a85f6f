package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ampro/academy-manager/internal/app/models/dto"
	"github.com/ampro/academy-manager/internal/app/services"
	"github.com/ampro/academy-manager/internal/middleware"
)

// DashboardController serves the derived statistics view
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetDashboard returns the aggregates for the dashboard view
// @Summary Dashboard statistics
// @Description Returns collection totals, students-per-class counts and the top pending dues by class
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.dashboardService.GetDashboard(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}

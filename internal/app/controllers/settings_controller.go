package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ampro/academy-manager/internal/app/models"
	"github.com/ampro/academy-manager/internal/app/models/dto"
	"github.com/ampro/academy-manager/internal/app/services"
	"github.com/ampro/academy-manager/internal/middleware"
)

// SettingsController handles the academy settings record
type SettingsController struct {
	settingsService services.SettingsService
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsService services.SettingsService) *SettingsController {
	return &SettingsController{settingsService: settingsService}
}

// GetSettings returns the stored settings
// @Summary Get settings
// @Description Returns the academy settings, or the defaults when none are saved yet
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.AcademySettings}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /settings [get]
func (c *SettingsController) GetSettings(ctx *gin.Context) {
	settings, err := c.settingsService.Get(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(settings))
}

// UpdateSettings replaces the stored settings
// @Summary Update settings
// @Description Replaces the academy settings record wholesale
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} dto.APIResponse{data=models.AcademySettings} "Settings saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 507 {object} dto.ErrorResponse "Storage full"
// @Router /settings [put]
func (c *SettingsController) UpdateSettings(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid settings data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	settings := models.AcademySettings{AcademyName: req.AcademyName}
	if err := c.settingsService.Update(ctx, settings); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(settings))
}

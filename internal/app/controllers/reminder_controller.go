package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ampro/academy-manager/internal/app/models/dto"
	"github.com/ampro/academy-manager/internal/app/services"
	"github.com/ampro/academy-manager/internal/middleware"
)

// ReminderController handles fee reminder listing and dispatch
type ReminderController struct {
	reminderService services.ReminderService
}

// NewReminderController creates a new ReminderController
func NewReminderController(reminderService services.ReminderService) *ReminderController {
	return &ReminderController{reminderService: reminderService}
}

// ListReminders returns students with pending dues and their cooldown state
// @Summary List reminder candidates
// @Description Returns students with a positive due, each with its cooldown state, optionally filtered by class
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Param standard query string false "Exact class label"
// @Success 200 {object} dto.APIResponse{data=[]dto.ReminderEntry}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /reminders [get]
func (c *ReminderController) ListReminders(ctx *gin.Context) {
	entries, err := c.reminderService.ListPending(ctx, ctx.Query("standard"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(entries))
}

// SendReminder records a reminder send and returns the chat deep link
// @Summary Send a reminder
// @Description Records the reminder timestamp and returns a wa.me link with the pre-filled reminder message
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SendReminderResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 429 {object} dto.ErrorResponse "Cooldown active"
// @Router /reminders/{id} [post]
func (c *ReminderController) SendReminder(ctx *gin.Context) {
	result, err := c.reminderService.Send(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ampro/academy-manager/internal/app/models/dto"
	"github.com/ampro/academy-manager/internal/app/services"
	"github.com/ampro/academy-manager/internal/middleware"
	"github.com/ampro/academy-manager/internal/pkg/receipt"
	"github.com/ampro/academy-manager/internal/pkg/whatsapp"
)

// ReceiptController generates fee receipt PDFs and share links
type ReceiptController struct {
	studentService  services.StudentService
	settingsService services.SettingsService
}

// NewReceiptController creates a new ReceiptController
func NewReceiptController(studentService services.StudentService, settingsService services.SettingsService) *ReceiptController {
	return &ReceiptController{
		studentService:  studentService,
		settingsService: settingsService,
	}
}

// GetReceipt downloads a student's fee receipt as PDF
// @Summary Download a fee receipt
// @Description Generates an A5 payment receipt PDF for the student, with a receipt number derived from the current time
// @Tags receipts
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {string} string "PDF file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /receipts/{id} [get]
func (c *ReceiptController) GetReceipt(ctx *gin.Context) {
	student, err := c.studentService.Get(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	settings, err := c.settingsService.Get(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	data, err := receipt.Generate(student, settings.AcademyName, time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", receipt.FileName(student)))
	ctx.Data(http.StatusOK, "application/pdf", data)
}

// ShareReceipt returns the chat deep link for sharing a receipt
// @Summary Share a fee receipt
// @Description Returns a wa.me link with the pre-filled receipt message for the student
// @Tags receipts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.ShareReceiptResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /receipts/{id}/share [get]
func (c *ReceiptController) ShareReceipt(ctx *gin.Context) {
	student, err := c.studentService.Get(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	settings, err := c.settingsService.Get(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := whatsapp.ReceiptMessage(student.Name, settings.AcademyName, student.PaidFee)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ShareReceiptResponse{
		Link:    whatsapp.Link(student.WhatsApp, message),
		Message: message,
	}))
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ampro/academy-manager/internal/app/models/dto"
	"github.com/ampro/academy-manager/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the standard error envelope
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	details := func(detail *dto.ErrorDetail) *dto.ErrorDetail {
		if errors.As(err, &custom) && custom.Details != nil {
			return detail.WithDetails(custom.Details)
		}
		return detail
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid password")))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")))
	case errors.Is(err, apperrors.ErrReminderCooldown):
		c.JSON(http.StatusTooManyRequests, dto.NewErrorResponse(
			details(dto.NewErrorDetail(dto.ErrorCodeReminderCooldown, "Reminder cooldown active"))))
	case errors.Is(err, apperrors.ErrStorageFull):
		c.JSON(http.StatusInsufficientStorage, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeStorageFull, "Data was not saved: storage quota exceeded")))
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeStorageUnavailable, "Storage unavailable")))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			details(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()))))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ampro/academy-manager/internal/app/models/dto"
	"github.com/ampro/academy-manager/internal/app/services"
	"github.com/ampro/academy-manager/internal/middleware"
)

// AuthController handles session gate operations
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login opens a session
// @Summary Log in
// @Description Verifies the academy password and returns the session token together with settings and the student list
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Session opened"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Wrong password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	payload, err := c.authService.Login(ctx, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(payload))
}

// Logout closes the session
// @Summary Log out
// @Description Removes the session token; idempotent
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Session closed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.authService.Logout(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "logged out"}))
}

// Session reports the authentication state
// @Summary Session state
// @Description Reports whether an active session exists
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse}
// @Router /auth/session [get]
func (c *AuthController) Session(ctx *gin.Context) {
	authenticated, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SessionResponse{Authenticated: authenticated}))
}

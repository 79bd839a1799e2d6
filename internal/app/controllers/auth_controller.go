// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/daudx/sfhms/internal/app/models/dto"
	"github.com/daudx/sfhms/internal/app/services"
	"github.com/daudx/sfhms/internal/middleware"
)

// AuthController handles registration, login and logout
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /api/auth/register
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing required fields"))
		return
	}

	userID, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterResponse{
		Success: true,
		UserID:  userID,
		Message: "User registered successfully",
	})
}

// Login handles POST /api/auth/login. On success the signed token is
// returned in the body and set as the identity cookie.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing required fields"))
		return
	}

	token, user, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie(middleware.AuthCookieName, token, 12*3600, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Token:   token,
		User: dto.UserInfo{
			ID:       user.ID,
			Name:     user.Name,
			Username: user.Username,
			Email:    user.Email,
			Role:     string(user.Role),
		},
	})
}

// Logout handles POST /api/auth/logout by clearing the identity cookie.
// No database interaction.
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

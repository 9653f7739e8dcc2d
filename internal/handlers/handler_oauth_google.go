package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
	"github.com/fintrackr/finance_tracker_app/internal/middleware"
	"github.com/fintrackr/finance_tracker_app/internal/utils"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

// GoogleOAuthHandler handles Google sign-in via the authorization-code flow.
type GoogleOAuthHandler struct {
	userService   portssvc.UserSvcFacade
	tokenService  portssvc.TokenSvcFacade
	googleService portssvc.GoogleOAuthHandlerSvcFacade
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(services *portssvc.ServiceContainer) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		userService:   services.User,
		tokenService:  services.TokenService,
		googleService: services.GoogleOAuthHandler,
	}
}

// registerGoogleOAuthRoutes sets up the Google OAuth routes under the auth group.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services)
	rg.POST("/google/exchange-code", h.ExchangeCode)
}

// exchangeCodeRequest is the payload for the Google code exchange.
type exchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// googleUserInfoFromIDToken maps verified ID token claims onto the userinfo
// shape used for account lookup and creation.
func googleUserInfoFromIDToken(payload *idtoken.Payload) *domain.GoogleUserInfo {
	info := &domain.GoogleUserInfo{ID: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		info.Email = email
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		info.VerifiedEmail = verified
	}
	if name, ok := payload.Claims["name"].(string); ok {
		info.Name = name
	}
	return info
}

// ExchangeCode godoc
// @Summary Google sign-in
// @Description Exchanges a Google authorization code for application tokens,
// @Description creating the account on first sign-in.
// @Tags auth
// @Accept json
// @Produce json
// @Param exchange body exchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req exchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	token, err := h.googleService.ExchangeCodeForToken(c.Request.Context(), req.Code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		respondWithError(c, apperrors.NewUnauthorizedError("Invalid authorization code"))
		return
	}

	// Prefer the signed ID token over a userinfo round trip; the claims are
	// already verified against our client ID.
	var userInfo *domain.GoogleUserInfo
	if rawIDToken, ok := token.Extra("id_token").(string); ok && rawIDToken != "" {
		payload, err := h.googleService.ValidateGoogleIDToken(c.Request.Context(), rawIDToken)
		if err != nil {
			logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
			respondWithError(c, apperrors.NewUnauthorizedError("Invalid ID token"))
			return
		}
		userInfo = googleUserInfoFromIDToken(payload)
	} else {
		userInfo, err = h.googleService.GetUserInfo(c.Request.Context(), token)
		if err != nil {
			logger.Error("Failed to fetch Google user info", slog.String("error", err.Error()))
			respondWithError(c, apperrors.NewInternalServerError("Failed to fetch user info"))
			return
		}
	}

	user, err := h.userService.CreateOAuthUser(
		c.Request.Context(),
		userInfo.Name,
		userInfo.Email,
		string(domain.ProviderGoogle),
		userInfo.ID,
		userInfo.VerifiedEmail,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		respondWithError(c, apperrors.NewInternalServerError("Failed to generate token"))
		return
	}

	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate refresh token", slog.String("error", err.Error()))
		respondWithError(c, apperrors.NewInternalServerError("Failed to generate token"))
		return
	}

	if err := h.userService.UpdateRefreshToken(c.Request.Context(), user.UserID, utils.HashRefreshToken(refreshToken), refreshExpiry); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:        accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	})
}

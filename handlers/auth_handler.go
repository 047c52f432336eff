package handlers

import (
	"net/http"

	"newsdesk-admin/helper"
	"newsdesk-admin/middleware"
	"newsdesk-admin/models"
	"newsdesk-admin/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	cookieTTL   int // seconds
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, cookieTTL int, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, cookieTTL: cookieTTL, Helper: h}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		h.Helper.SendUnauthorizedError(c, "Invalid credentials", h.Helper.EmptyJsonMap())
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, token, h.cookieTTL, "/", "", false, true)

	h.Helper.SendSuccess(c, "Login successful", h.Helper.EmptyJsonMap())
}

func (h *AuthHandler) Verify(c *gin.Context) {
	token, err := c.Cookie(middleware.AuthCookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, models.VerifyResponse{Authenticated: false})
		return
	}

	username, err := h.authService.VerifyToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.VerifyResponse{Authenticated: false})
		return
	}

	c.JSON(http.StatusOK, models.VerifyResponse{Authenticated: true, Username: username})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)
	h.Helper.SendSuccess(c, "Logged out", h.Helper.EmptyJsonMap())
}

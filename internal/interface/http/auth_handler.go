package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/storefront-api/internal/application"
	"github.com/oksasatya/storefront-api/internal/interface/middleware"
	"github.com/oksasatya/storefront-api/pkg/response"
	"github.com/oksasatya/storefront-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// Register POST /auth/register {email, password}
// 201 with a plain-text confirmation, 500 "User could not be created" otherwise.
func (h *AuthHandler) Register(c *gin.Context) {
	var req application.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, h.Svc.RegisterFailed(validation.BindError(err)))
		return
	}
	if _, err := h.Svc.Register(c.Request.Context(), req); err != nil {
		response.Fail(c, err)
		return
	}
	c.String(http.StatusCreated, "User created")
}

// Login POST /auth/login {email, password}
// The token is returned both in the auth-token header and as the body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req application.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, validation.BindError(err))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.Header(middleware.AuthTokenHeader, res.Token)
	c.String(http.StatusOK, res.Token)
}

// Me GET /auth/me (auth required)
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.Svc.Me(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

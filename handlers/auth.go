package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/revisaai/revisaai/internal/config"
	"github.com/revisaai/revisaai/internal/models"
	"github.com/revisaai/revisaai/internal/session"
	"github.com/revisaai/revisaai/internal/store"
	"github.com/revisaai/revisaai/internal/tokens"
	"github.com/revisaai/revisaai/pkg/logger"
	"github.com/revisaai/revisaai/pkg/middleware"
)

// AuthHandler holds dependencies
type AuthHandler struct {
	cfg   *config.Config
	users store.UserStore
	deny  *session.RedisDenylist
}

// NewAuthHandler builds the handler; deny may be nil when Redis is not configured.
func NewAuthHandler(cfg *config.Config, users store.UserStore, deny *session.RedisDenylist) *AuthHandler {
	return &AuthHandler{cfg: cfg, users: users, deny: deny}
}

// Register routes under /auth. Logout sits behind auth.
func (h *AuthHandler) Register(rg gin.IRouter, auth gin.HandlerFunc) {
	a := rg.Group("/auth")
	a.POST("/login", h.Login)
	a.POST("/register", h.SignUp)
	a.POST("/logout", auth, h.Logout)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Email = models.NormalizeEmail(req.Email)
	if !bindValid(c, &req) {
		return
	}
	u, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	h.issue(c, http.StatusOK, u)
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req models.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Normalize()
	if !bindValid(c, &req) {
		return
	}
	u, err := h.users.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	logger.Infof("user registered: %s", u.ID)
	h.issue(c, http.StatusCreated, u)
}

func (h *AuthHandler) issue(c *gin.Context, status int, u models.User) {
	access, err := tokens.GenerateAccessToken(h.cfg, &u, h.cfg.JWT.AccessTokenTTL)
	if err != nil {
		logger.Errorf("access token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create access token"})
		return
	}
	c.JSON(status, models.AuthResult{User: u, Token: access})
}

// Logout denies the presented access token until it expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	if !revokePresented(c, h.deny) {
		return
	}
	c.Status(http.StatusNoContent)
}

// revokePresented denies the request's access token until its exp. It writes
// a 500 and returns false when the denylist cannot be reached.
func revokePresented(c *gin.Context, deny *session.RedisDenylist) bool {
	raw := c.GetString(middleware.TokenKey)
	if deny == nil || raw == "" {
		return true
	}
	exp, err := tokens.ExpiresAt(raw)
	if err != nil {
		return true
	}
	if err := deny.Deny(c.Request.Context(), raw, time.Until(exp)); err != nil {
		logger.Errorf("deny access token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke access token"})
		return false
	}
	return true
}

package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/revisaai/revisaai/internal/models"
	"github.com/revisaai/revisaai/internal/session"
	"github.com/revisaai/revisaai/internal/store"
	"github.com/revisaai/revisaai/pkg/logger"
	"github.com/revisaai/revisaai/pkg/middleware"
)

// maxAvatarSize bounds multipart avatar uploads.
const maxAvatarSize = 5 << 20

// AvatarStore persists an avatar image and returns the URL to store on the user.
type AvatarStore interface {
	UploadAvatar(ctx context.Context, userID string, r io.Reader, size int64, contentType string) (string, error)
}

type UserHandler struct {
	stores  *store.Set
	users   store.UserStore
	deny    *session.RedisDenylist
	avatars AvatarStore
}

// NewUserHandler builds the handler; avatars may be nil, which disables
// uploads, and deny may be nil when Redis is not configured.
func NewUserHandler(stores *store.Set, deny *session.RedisDenylist, avatars AvatarStore) *UserHandler {
	return &UserHandler{stores: stores, users: stores.Users, deny: deny, avatars: avatars}
}

func (h *UserHandler) Register(rg gin.IRouter) {
	u := rg.Group("/users/:id", h.ownAccount)
	u.PUT("", h.updateProfile)
	u.DELETE("", h.deleteAccount)
	u.POST("/avatar", h.uploadAvatar)
}

// ownAccount rejects requests whose token subject differs from the :id in the path.
func (h *UserHandler) ownAccount(c *gin.Context) {
	if middleware.Subject(c) != c.Param("id") {
		writeError(c, errForbidden)
		c.Abort()
		return
	}
	c.Next()
}

func (h *UserHandler) updateProfile(c *gin.Context) {
	var req models.UpdateProfileInput
	if !bind(c, &req) {
		return
	}
	u, err := h.users.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// deleteAccount removes the user's motos with their revisions and reminders,
// then the account, and revokes the token used for the request.
func (h *UserHandler) deleteAccount(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	motos, err := h.stores.Motos.ListByOwner(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	for _, m := range motos {
		if err := h.stores.DeleteMoto(ctx, m.ID); err != nil {
			writeError(c, err)
			return
		}
	}
	if err := h.users.Delete(ctx, id); err != nil {
		writeError(c, err)
		return
	}
	logger.Infof("account deleted: %s (%d motos)", id, len(motos))
	if !revokePresented(c, h.deny) {
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) uploadAvatar(c *gin.Context) {
	if h.avatars == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "avatar storage not configured"})
		return
	}
	fh, err := c.FormFile("avatar")
	if err != nil {
		writeError(c, &models.ValidationError{Field: "avatar", Message: "is required"})
		return
	}
	if fh.Size > maxAvatarSize {
		writeError(c, &models.ValidationError{Field: "avatar", Message: "must be at most 5MB"})
		return
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeError(c, &models.ValidationError{Field: "avatar", Message: "must be an image"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer f.Close()

	id := c.Param("id")
	url, err := h.avatars.UploadAvatar(c.Request.Context(), id, f, fh.Size, contentType)
	if err != nil {
		writeError(c, err)
		return
	}
	u, err := h.users.Update(c.Request.Context(), id, models.UpdateProfileInput{AvatarURL: &url})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

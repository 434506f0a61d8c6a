package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/revisaai/revisaai/internal/models"
	"github.com/revisaai/revisaai/internal/store"
	"github.com/revisaai/revisaai/pkg/middleware"
)

// ResourceHandler serves motos, revisions and notifications from a store.Set.
// Every route is scoped to the subject of the caller's token.
type ResourceHandler struct {
	stores *store.Set
}

func NewResourceHandler(stores *store.Set) *ResourceHandler {
	return &ResourceHandler{stores: stores}
}

func (h *ResourceHandler) Register(rg gin.IRouter) {
	m := rg.Group("/motos")
	m.GET("", h.listMotos)
	m.POST("", h.createMoto)
	m.PUT("/:id", h.updateMoto)
	m.PATCH("/:id", h.updateMoto)
	m.DELETE("/:id", h.deleteMoto)
	m.GET("/:id/revisions", h.listMotoRevisions)

	r := rg.Group("/revisions")
	r.GET("", h.listRevisions)
	r.POST("", h.createRevision)
	r.PATCH("/:id", h.updateRevision)
	r.DELETE("/:id", h.deleteRevision)

	n := rg.Group("/notifications")
	n.GET("", h.listNotifications)
	n.POST("", h.createNotification)
	n.PATCH("/:id", h.updateNotificationStatus)
	n.DELETE("/:id", h.deleteNotification)
	n.PATCH("/revision/:revisionId", h.updateNotificationsByRevision)
	n.DELETE("/revision/:revisionId", h.deleteNotificationsByRevision)
}

// owned loads id and fails with errForbidden when it belongs to someone else.
func owned[T any](c *gin.Context, get func(context.Context, string) (T, error), ownerOf func(T) string, id string) (T, error) {
	v, err := get(c.Request.Context(), id)
	if err != nil {
		return v, err
	}
	if ownerOf(v) != middleware.Subject(c) {
		return v, errNotOwner
	}
	return v, nil
}

func motoOwner(m models.Moto) string                 { return m.OwnerID }
func revisionOwner(r models.Revision) string         { return r.OwnerID }
func notificationOwner(n models.Notification) string { return n.OwnerID }

// gone reports whether err only says the target does not exist. Deletes of
// unknown ids succeed, so they stay idempotent.
func gone(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}

func (h *ResourceHandler) listMotos(c *gin.Context) {
	list, err := h.stores.Motos.ListByOwner(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ResourceHandler) createMoto(c *gin.Context) {
	var req models.CreateMotoInput
	if !bind(c, &req) {
		return
	}
	req.OwnerID = middleware.Subject(c)
	m, err := h.stores.Motos.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *ResourceHandler) updateMoto(c *gin.Context) {
	var req models.UpdateMotoInput
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()
	if _, err := owned(c, h.stores.Motos.Get, motoOwner, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	m, err := h.stores.Motos.Update(ctx, c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *ResourceHandler) deleteMoto(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := owned(c, h.stores.Motos.Get, motoOwner, c.Param("id")); err != nil {
		if gone(err) {
			c.Status(http.StatusNoContent)
			return
		}
		writeError(c, err)
		return
	}
	if err := h.stores.DeleteMoto(ctx, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResourceHandler) listMotoRevisions(c *gin.Context) {
	list, err := h.stores.Revisions.ListByMoto(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	sub := middleware.Subject(c)
	mine := list[:0]
	for _, r := range list {
		if r.OwnerID == sub {
			mine = append(mine, r)
		}
	}
	c.JSON(http.StatusOK, mine)
}

func (h *ResourceHandler) listRevisions(c *gin.Context) {
	list, err := h.stores.Revisions.ListByOwner(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ResourceHandler) createRevision(c *gin.Context) {
	var req models.CreateRevisionInput
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()
	if _, err := owned(c, h.stores.Motos.Get, motoOwner, req.MotoID); err != nil {
		writeError(c, err)
		return
	}
	req.OwnerID = middleware.Subject(c)
	r, err := h.stores.Revisions.Create(ctx, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *ResourceHandler) updateRevision(c *gin.Context) {
	var req models.UpdateRevisionInput
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()
	if _, err := owned(c, h.stores.Revisions.Get, revisionOwner, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	if req.MotoID != nil {
		if _, err := owned(c, h.stores.Motos.Get, motoOwner, *req.MotoID); err != nil {
			writeError(c, err)
			return
		}
	}
	r, err := h.stores.Revisions.Update(ctx, c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *ResourceHandler) deleteRevision(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := owned(c, h.stores.Revisions.Get, revisionOwner, c.Param("id")); err != nil {
		if gone(err) {
			c.Status(http.StatusNoContent)
			return
		}
		writeError(c, err)
		return
	}
	if err := h.stores.DeleteRevision(ctx, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResourceHandler) listNotifications(c *gin.Context) {
	list, err := h.stores.Notifications.ListByOwner(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// createNotification requires the revision to belong to the caller; the
// reminder takes its moto from the revision.
func (h *ResourceHandler) createNotification(c *gin.Context) {
	var req models.CreateNotificationInput
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()
	rev, err := owned(c, h.stores.Revisions.Get, revisionOwner, req.RevisionID)
	if err != nil {
		writeError(c, err)
		return
	}
	req.MotoID = rev.MotoID
	req.OwnerID = rev.OwnerID
	n, err := h.stores.Notifications.Create(ctx, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (h *ResourceHandler) updateNotificationStatus(c *gin.Context) {
	var req models.StatusInput
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()
	if _, err := owned(c, h.stores.Notifications.Get, notificationOwner, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	n, err := h.stores.Notifications.UpdateStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *ResourceHandler) deleteNotification(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := owned(c, h.stores.Notifications.Get, notificationOwner, c.Param("id")); err != nil {
		if gone(err) {
			c.Status(http.StatusNoContent)
			return
		}
		writeError(c, err)
		return
	}
	if err := h.stores.Notifications.Delete(ctx, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// An unknown revision has no reminders: the bulk update returns an empty
// list and the bulk delete succeeds.
func (h *ResourceHandler) updateNotificationsByRevision(c *gin.Context) {
	var req models.StatusInput
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()
	if _, err := owned(c, h.stores.Revisions.Get, revisionOwner, c.Param("revisionId")); err != nil {
		if gone(err) {
			c.JSON(http.StatusOK, []models.Notification{})
			return
		}
		writeError(c, err)
		return
	}
	list, err := h.stores.Notifications.UpdateStatusByRevision(ctx, c.Param("revisionId"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ResourceHandler) deleteNotificationsByRevision(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := owned(c, h.stores.Revisions.Get, revisionOwner, c.Param("revisionId")); err != nil {
		if gone(err) {
			c.Status(http.StatusNoContent)
			return
		}
		writeError(c, err)
		return
	}
	if err := h.stores.Notifications.DeleteByRevision(ctx, c.Param("revisionId")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

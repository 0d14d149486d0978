package handlers

import (
	"errors"
	"net/http"

	response "tradeportal/internal/adapter/http/dto/response"
	"tradeportal/internal/usecase"
	"tradeportal/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the caller's in-app notification inbox.

type NotificationHandler struct {
	usecase usecase.INotificationInbox
}

func NewNotificationHandler(uc usecase.INotificationInbox) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) ListMine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	notifications, err := h.usecase.ListMine(c.Request.Context(), actor)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotifications(notifications))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	n, err := h.usecase.MarkRead(c.Request.Context(), actor, c.Param("notification_id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotification(n))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotificationInput):
		return pkg.NewDomainErrorSimple("VALIDATION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Notification not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("UNKNOWN", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

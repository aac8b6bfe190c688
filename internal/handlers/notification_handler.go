package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/gestor-negocios-api/internal/middleware"
	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/repository"
	"github.com/sjperalta/gestor-negocios-api/internal/services"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// @Summary List Notifications
// @Description Get a paginated list of notifications for the current user
// @Tags Notifications
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) Index(c *gin.Context) {
	userID := middleware.GetUserID(c)
	query := repository.NewListQuery()
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))

	notifications, total, err := h.notificationService.FindByUser(c.Request.Context(), userID, query)
	if err != nil {
		respondError(c, err)
		return
	}
	unread, err := h.notificationService.CountUnread(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, notifications[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"notifications": responses, "unread": unread, "pagination": gin.H{"total": total}})
}

// @Summary Mark Notification Read
// @Description Mark a notification as read
// @Tags Notifications
// @Produce json
// @Param notification_id path int true "Notification ID"
// @Success 200 {object} models.NotificationResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /notifications/{notification_id}/read [put]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, ok := pathID(c, "notification_id")
	if !ok {
		return
	}
	notification, err := h.notificationService.MarkAsRead(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": notification.ToResponse(), "message": "Notificación marcada como leída"})
}

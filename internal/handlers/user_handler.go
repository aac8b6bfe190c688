package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/gestor-negocios-api/internal/middleware"
	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// @Summary Current User
// @Description Returns the authenticated user
// @Tags Users
// @Produce json
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userService.Me(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.ToResponse()})
}

type UpdateMeRequest struct {
	FullName       *string `json:"full_name" binding:"omitempty,max=200"`
	TelegramChatID *string `json:"telegram_chat_id" binding:"omitempty,max=64"`
}

// @Summary Update Current User
// @Description Changes the name or the Telegram chat id. An empty telegram_chat_id removes it.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body UpdateMeRequest true "Profile Fields"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if !bind(c, "user", &req) {
		return
	}

	user, err := h.userService.UpdateMe(requestContext(c), middleware.GetUserID(c), services.UserUpdate{
		FullName:       req.FullName,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.ToResponse(), "message": "Perfil actualizado"})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// @Summary Change Password
// @Description Replaces the password of the authenticated user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Passwords"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /users/me/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if !bind(c, "user", &req) {
		return
	}

	if err := h.userService.ChangePassword(requestContext(c), middleware.GetUserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contraseña actualizada"})
}

// @Summary Search Users
// @Description Finds users by name or email (at least 4 characters) to add them to a business
// @Tags Users
// @Produce json
// @Param query query string true "Name or email fragment"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /users/search [get]
func (h *UserHandler) Search(c *gin.Context) {
	users, err := h.userService.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.UserSummary, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToSummary())
	}
	c.JSON(http.StatusOK, gin.H{"users": responses})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/gestor-negocios-api/internal/middleware"
	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/services"
)

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

type ClientRequest struct {
	Identity string `json:"identity" binding:"required,max=50"`
	Name     string `json:"name" binding:"required,max=200"`
}

type UpdateClientRequest struct {
	Identity *string `json:"identity" binding:"omitempty,max=50"`
	Name     *string `json:"name" binding:"omitempty,max=200"`
}

// @Summary List Clients
// @Description Clients of the business ordered by name, with their outstanding debt
// @Tags Clients
// @Produce json
// @Param business_id path int true "Business ID"
// @Param search query string false "Filter by name or identity"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /businesses/{business_id}/clients [get]
func (h *ClientHandler) Index(c *gin.Context) {
	businessID, ok := pathID(c, "business_id")
	if !ok {
		return
	}
	clients, err := h.clientService.List(c.Request.Context(), middleware.GetUserID(c), businessID, c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// @Summary Create Client
// @Description Registers a client; the identity is unique within the business
// @Tags Clients
// @Accept json
// @Produce json
// @Param business_id path int true "Business ID"
// @Param request body ClientRequest true "Client Data"
// @Success 201 {object} models.ClientResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /businesses/{business_id}/clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	businessID, ok := pathID(c, "business_id")
	if !ok {
		return
	}
	var req ClientRequest
	if !bind(c, "client", &req) {
		return
	}

	client, err := h.clientService.Create(requestContext(c), middleware.GetUserID(c), businessID, services.ClientInput{
		Identity: req.Identity,
		Name:     req.Name,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"client": client, "message": "Cliente creado exitosamente"})
}

// @Summary Get Client
// @Tags Clients
// @Produce json
// @Param client_id path int true "Client ID"
// @Success 200 {object} models.ClientResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /clients/{client_id} [get]
func (h *ClientHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "client_id")
	if !ok {
		return
	}
	client, err := h.clientService.Get(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

// @Summary Update Client
// @Tags Clients
// @Accept json
// @Produce json
// @Param client_id path int true "Client ID"
// @Param request body UpdateClientRequest true "Client Fields"
// @Success 200 {object} models.ClientResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /clients/{client_id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "client_id")
	if !ok {
		return
	}
	var req UpdateClientRequest
	if !bind(c, "client", &req) {
		return
	}

	client, err := h.clientService.Update(requestContext(c), middleware.GetUserID(c), id, services.ClientUpdate{
		Identity: req.Identity,
		Name:     req.Name,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client, "message": "Cliente actualizado"})
}

// @Summary Delete Client
// @Description Deletes the client with its debts and installments
// @Tags Clients
// @Produce json
// @Param client_id path int true "Client ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /clients/{client_id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "client_id")
	if !ok {
		return
	}
	if err := h.clientService.Delete(requestContext(c), middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cliente eliminado"})
}

// @Summary Client Debts
// @Description Debts of the client, newest first
// @Tags Clients
// @Produce json
// @Param client_id path int true "Client ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /clients/{client_id}/debts [get]
func (h *ClientHandler) Debts(c *gin.Context) {
	id, ok := pathID(c, "client_id")
	if !ok {
		return
	}
	debts, err := h.clientService.Debts(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"debts": debtResponses(debts)})
}

func debtResponses(debts []models.Debt) []models.DebtResponse {
	out := make([]models.DebtResponse, 0, len(debts))
	for i := range debts {
		out = append(out, debts[i].ToResponse())
	}
	return out
}

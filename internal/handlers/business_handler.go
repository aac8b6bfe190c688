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

type BusinessHandler struct {
	businessService    *services.BusinessService
	aggregationService *services.AggregationService
}

func NewBusinessHandler(businessService *services.BusinessService, aggregationService *services.AggregationService) *BusinessHandler {
	return &BusinessHandler{businessService: businessService, aggregationService: aggregationService}
}

type BusinessRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description"`
	FoundedOn   *string `json:"founded_on"`
}

type UpdateBusinessRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	FoundedOn   *string `json:"founded_on"`
}

// @Summary List Businesses
// @Description Businesses the current user belongs to, newest first
// @Tags Businesses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /businesses [get]
func (h *BusinessHandler) Index(c *gin.Context) {
	businesses, err := h.businessService.List(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.BusinessResponse, 0, len(businesses))
	for i := range businesses {
		responses = append(responses, businesses[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"businesses": responses})
}

// @Summary Create Business
// @Description Creates a business; the creator becomes its first member
// @Tags Businesses
// @Accept json
// @Produce json
// @Param request body BusinessRequest true "Business Data"
// @Success 201 {object} models.BusinessResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /businesses [post]
func (h *BusinessHandler) Create(c *gin.Context) {
	var req BusinessRequest
	if !bind(c, "business", &req) {
		return
	}
	foundedOn, ok := parseOptionalDate(c, req.FoundedOn, "founded_on")
	if !ok {
		return
	}

	business, err := h.businessService.Create(requestContext(c), middleware.GetUserID(c), services.BusinessInput{
		Name:        req.Name,
		Description: req.Description,
		FoundedOn:   foundedOn,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"business": business.ToResponse(), "message": "Negocio creado exitosamente"})
}

// @Summary Get Business
// @Description Business detail with its members
// @Tags Businesses
// @Produce json
// @Param business_id path int true "Business ID"
// @Success 200 {object} models.BusinessResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /businesses/{business_id} [get]
func (h *BusinessHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "business_id")
	if !ok {
		return
	}

	business, members, err := h.businessService.Get(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := business.ToResponse()
	resp.Members = summaries(members)
	c.JSON(http.StatusOK, gin.H{"business": resp})
}

// @Summary Update Business
// @Description Partial update; omitted fields keep their value
// @Tags Businesses
// @Accept json
// @Produce json
// @Param business_id path int true "Business ID"
// @Param request body UpdateBusinessRequest true "Business Fields"
// @Success 200 {object} models.BusinessResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /businesses/{business_id} [put]
func (h *BusinessHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "business_id")
	if !ok {
		return
	}
	var req UpdateBusinessRequest
	if !bind(c, "business", &req) {
		return
	}
	foundedOn, ok := parseOptionalDate(c, req.FoundedOn, "founded_on")
	if !ok {
		return
	}

	business, err := h.businessService.Update(requestContext(c), middleware.GetUserID(c), id, services.BusinessUpdate{
		Name:        req.Name,
		Description: req.Description,
		FoundedOn:   foundedOn,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"business": business.ToResponse(), "message": "Negocio actualizado"})
}

// @Summary Delete Business
// @Description Deletes the business with its clients, transactions, debts and installments
// @Tags Businesses
// @Produce json
// @Param business_id path int true "Business ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /businesses/{business_id} [delete]
func (h *BusinessHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "business_id")
	if !ok {
		return
	}
	if err := h.businessService.Delete(requestContext(c), middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Negocio eliminado"})
}

// @Summary List Members
// @Tags Businesses
// @Produce json
// @Param business_id path int true "Business ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /businesses/{business_id}/members [get]
func (h *BusinessHandler) Members(c *gin.Context) {
	id, ok := pathID(c, "business_id")
	if !ok {
		return
	}
	members, err := h.businessService.Members(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": summaries(members)})
}

// @Summary Add Member
// @Description Associates an existing user with the business
// @Tags Businesses
// @Produce json
// @Param business_id path int true "Business ID"
// @Param user_id path int true "User ID"
// @Success 201 {object} models.UserSummary
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /businesses/{business_id}/members/{user_id} [post]
func (h *BusinessHandler) AddMember(c *gin.Context) {
	id, ok := pathID(c, "business_id")
	if !ok {
		return
	}
	memberID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	member, err := h.businessService.AddMember(requestContext(c), middleware.GetUserID(c), id, memberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"member": member.ToSummary(), "message": "Miembro agregado"})
}

// @Summary Remove Member
// @Description Detaches a user from the business. The last member cannot be removed.
// @Tags Businesses
// @Produce json
// @Param business_id path int true "Business ID"
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /businesses/{business_id}/members/{user_id} [delete]
func (h *BusinessHandler) RemoveMember(c *gin.Context) {
	id, ok := pathID(c, "business_id")
	if !ok {
		return
	}
	memberID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	if err := h.businessService.RemoveMember(requestContext(c), middleware.GetUserID(c), id, memberID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Miembro eliminado"})
}

// @Summary Balance
// @Description Income minus expense of the business, optionally within a date range
// @Tags Businesses
// @Produce json
// @Param business_id path int true "Business ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} models.BalanceResponse
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /businesses/{business_id}/balance [get]
func (h *BusinessHandler) Balance(c *gin.Context) {
	id, ok := pathID(c, "business_id")
	if !ok {
		return
	}
	window, ok := queryWindow(c)
	if !ok {
		return
	}

	balance, err := h.aggregationService.Balance(c.Request.Context(), middleware.GetUserID(c), id, window)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance.ToResponse())
}

// @Summary Audit Trail
// @Description Paginated audit entries of the business, newest first
// @Tags Businesses
// @Produce json
// @Param business_id path int true "Business ID"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(50)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /businesses/{business_id}/audits [get]
func (h *BusinessHandler) Audits(c *gin.Context) {
	id, ok := pathID(c, "business_id")
	if !ok {
		return
	}
	query := repository.NewListQuery()
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "50"))
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PerPage < 1 || query.PerPage > 200 {
		query.PerPage = 50
	}

	logs, total, err := h.businessService.AuditTrail(c.Request.Context(), middleware.GetUserID(c), id, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"audits": logs, "pagination": gin.H{"total": total, "page": query.Page, "per_page": query.PerPage}})
}

func summaries(users []models.User) []models.UserSummary {
	out := make([]models.UserSummary, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToSummary())
	}
	return out
}

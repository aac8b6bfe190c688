package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/gestor-negocios-api/internal/middleware"
	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/services"
)

type DebtHandler struct {
	debtService        *services.DebtService
	aggregationService *services.AggregationService
}

func NewDebtHandler(debtService *services.DebtService, aggregationService *services.AggregationService) *DebtHandler {
	return &DebtHandler{debtService: debtService, aggregationService: aggregationService}
}

type DebtRequest struct {
	TransactionID uint            `json:"transaction_id" binding:"required"`
	ClientID      uint            `json:"client_id" binding:"required"`
	TotalAmount   decimal.Decimal `json:"total_amount" binding:"gt=0"`
	Description   *string         `json:"description"`
}

type UpdateDebtRequest struct {
	Description *string `json:"description"`
}

type InstallmentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"gt=0"`
	Date   *string         `json:"date"`
	Notes  *string         `json:"notes"`
}

// @Summary List Debts
// @Description Debts of the business, optionally filtered by status
// @Tags Debts
// @Produce json
// @Param business_id path int true "Business ID"
// @Param status query string false "pending, partial or settled"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /businesses/{business_id}/debts [get]
func (h *DebtHandler) Index(c *gin.Context) {
	businessID, ok := pathID(c, "business_id")
	if !ok {
		return
	}
	debts, err := h.debtService.List(c.Request.Context(), middleware.GetUserID(c), businessID, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"debts": debtResponses(debts)})
}

// @Summary Debt Summary
// @Description Totals of the business debt portfolio
// @Tags Debts
// @Produce json
// @Param business_id path int true "Business ID"
// @Success 200 {object} models.DebtSummaryResponse
// @Security BearerAuth
// @Router /businesses/{business_id}/debts/summary [get]
func (h *DebtHandler) Summary(c *gin.Context) {
	businessID, ok := pathID(c, "business_id")
	if !ok {
		return
	}
	summary, err := h.aggregationService.DebtSummary(c.Request.Context(), middleware.GetUserID(c), businessID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary.ToResponse())
}

// @Summary Create Debt
// @Description Opens a debt of a client funded by a transaction of the same business
// @Tags Debts
// @Accept json
// @Produce json
// @Param request body DebtRequest true "Debt Data"
// @Success 201 {object} models.DebtResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /debts [post]
func (h *DebtHandler) Create(c *gin.Context) {
	var req DebtRequest
	if !bind(c, "debt", &req) {
		return
	}

	debt, err := h.debtService.Create(requestContext(c), middleware.GetUserID(c), services.DebtInput{
		TransactionID: req.TransactionID,
		ClientID:      req.ClientID,
		TotalAmount:   req.TotalAmount,
		Description:   req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"debt": debt.ToResponse(), "message": "Deuda registrada"})
}

// @Summary Get Debt
// @Description Debt detail with its client and transaction
// @Tags Debts
// @Produce json
// @Param debt_id path int true "Debt ID"
// @Success 200 {object} models.DebtResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /debts/{debt_id} [get]
func (h *DebtHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "debt_id")
	if !ok {
		return
	}
	debt, err := h.debtService.Get(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"debt": debt.ToResponse()})
}

// @Summary Update Debt
// @Description Only the description can change; amounts move through installments
// @Tags Debts
// @Accept json
// @Produce json
// @Param debt_id path int true "Debt ID"
// @Param request body UpdateDebtRequest true "Debt Fields"
// @Success 200 {object} models.DebtResponse
// @Security BearerAuth
// @Router /debts/{debt_id} [put]
func (h *DebtHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "debt_id")
	if !ok {
		return
	}
	var req UpdateDebtRequest
	if !bind(c, "debt", &req) {
		return
	}

	debt, err := h.debtService.Update(requestContext(c), middleware.GetUserID(c), id, services.DebtUpdate{Description: req.Description})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"debt": debt.ToResponse(), "message": "Deuda actualizada"})
}

// @Summary Delete Debt
// @Description Deletes the debt and its installments
// @Tags Debts
// @Produce json
// @Param debt_id path int true "Debt ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /debts/{debt_id} [delete]
func (h *DebtHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "debt_id")
	if !ok {
		return
	}
	if err := h.debtService.Delete(requestContext(c), middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deuda eliminada"})
}

// @Summary List Installments
// @Description Installments of the debt, most recent date first
// @Tags Debts
// @Produce json
// @Param debt_id path int true "Debt ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /debts/{debt_id}/installments [get]
func (h *DebtHandler) Installments(c *gin.Context) {
	id, ok := pathID(c, "debt_id")
	if !ok {
		return
	}
	installments, err := h.debtService.Installments(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.InstallmentResponse, 0, len(installments))
	for i := range installments {
		responses = append(responses, installments[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"installments": responses})
}

// @Summary Apply Installment
// @Description Records a payment against the debt. Amounts above the outstanding balance are rejected.
// @Tags Debts
// @Accept json
// @Produce json
// @Param debt_id path int true "Debt ID"
// @Param request body InstallmentRequest true "Installment Data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Security BearerAuth
// @Router /debts/{debt_id}/installments [post]
func (h *DebtHandler) ApplyInstallment(c *gin.Context) {
	id, ok := pathID(c, "debt_id")
	if !ok {
		return
	}
	var req InstallmentRequest
	if !bind(c, "installment", &req) {
		return
	}
	date, ok := parseOptionalDate(c, req.Date, "date")
	if !ok {
		return
	}

	result, err := h.debtService.ApplyInstallment(requestContext(c), middleware.GetUserID(c), id, services.InstallmentInput{
		Amount: req.Amount,
		Date:   date,
		Notes:  req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"installment": result.Installment.ToResponse(),
		"debt":        result.Debt.ToResponse(),
		"message":     "Abono registrado",
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/gestor-negocios-api/internal/middleware"
	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/services"
)

type TransactionHandler struct {
	transactionService *services.TransactionService
}

func NewTransactionHandler(transactionService *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

type TransactionRequest struct {
	Kind        string          `json:"kind" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount" binding:"gt=0"`
	Description *string         `json:"description"`
	Date        *string         `json:"date"`
}

type UpdateTransactionRequest struct {
	Kind        *string          `json:"kind" binding:"omitempty,oneof=income expense"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Date        *string          `json:"date"`
}

// @Summary List Transactions
// @Description Transactions of the business, most recent date first
// @Tags Transactions
// @Produce json
// @Param business_id path int true "Business ID"
// @Param kind query string false "income or expense"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /businesses/{business_id}/transactions [get]
func (h *TransactionHandler) Index(c *gin.Context) {
	businessID, ok := pathID(c, "business_id")
	if !ok {
		return
	}
	window, ok := queryWindow(c)
	if !ok {
		return
	}

	transactions, err := h.transactionService.List(c.Request.Context(), middleware.GetUserID(c), businessID, models.TransactionFilter{
		Kind:   c.Query("kind"),
		Window: window,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, transactions[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"transactions": responses})
}

// @Summary Create Transaction
// @Description Records an income or an expense. The date defaults to today.
// @Tags Transactions
// @Accept json
// @Produce json
// @Param business_id path int true "Business ID"
// @Param request body TransactionRequest true "Transaction Data"
// @Success 201 {object} models.TransactionResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /businesses/{business_id}/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	businessID, ok := pathID(c, "business_id")
	if !ok {
		return
	}
	var req TransactionRequest
	if !bind(c, "transaction", &req) {
		return
	}
	date, ok := parseOptionalDate(c, req.Date, "date")
	if !ok {
		return
	}

	transaction, err := h.transactionService.Create(requestContext(c), middleware.GetUserID(c), businessID, services.TransactionInput{
		Kind:        req.Kind,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transaction": transaction.ToResponse(), "message": "Transacción registrada"})
}

// @Summary Get Transaction
// @Tags Transactions
// @Produce json
// @Param transaction_id path int true "Transaction ID"
// @Success 200 {object} models.TransactionResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /transactions/{transaction_id} [get]
func (h *TransactionHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "transaction_id")
	if !ok {
		return
	}
	transaction, err := h.transactionService.Get(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": transaction.ToResponse()})
}

// @Summary Update Transaction
// @Description Partial update; omitted fields keep their value
// @Tags Transactions
// @Accept json
// @Produce json
// @Param transaction_id path int true "Transaction ID"
// @Param request body UpdateTransactionRequest true "Transaction Fields"
// @Success 200 {object} models.TransactionResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /transactions/{transaction_id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "transaction_id")
	if !ok {
		return
	}
	var req UpdateTransactionRequest
	if !bind(c, "transaction", &req) {
		return
	}
	date, ok := parseOptionalDate(c, req.Date, "date")
	if !ok {
		return
	}

	transaction, err := h.transactionService.Update(requestContext(c), middleware.GetUserID(c), id, services.TransactionUpdate{
		Kind:        req.Kind,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": transaction.ToResponse(), "message": "Transacción actualizada"})
}

// @Summary Delete Transaction
// @Description Deletes the transaction and the debt it funds
// @Tags Transactions
// @Produce json
// @Param transaction_id path int true "Transaction ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /transactions/{transaction_id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "transaction_id")
	if !ok {
		return
	}
	if err := h.transactionService.Delete(requestContext(c), middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transacción eliminada"})
}

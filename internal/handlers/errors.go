package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/sjperalta/gestor-negocios-api/internal/models"
	"github.com/sjperalta/gestor-negocios-api/internal/services"
	"github.com/sjperalta/gestor-negocios-api/internal/statemachine"
	"github.com/sjperalta/gestor-negocios-api/pkg/logger"
)

var errorStatuses = []struct {
	kind   error
	status int
}{
	{services.ErrNotFound, http.StatusNotFound},
	{services.ErrForbidden, http.StatusForbidden},
	{services.ErrUnauthenticated, http.StatusUnauthorized},
	{services.ErrValidation, http.StatusBadRequest},
	{services.ErrWeakPassword, http.StatusBadRequest},
	{services.ErrCrossBusinessMismatch, http.StatusBadRequest},
	{services.ErrExceedsBalance, http.StatusBadRequest},
	{services.ErrDuplicateEmail, http.StatusConflict},
	{services.ErrDuplicateClientIdentity, http.StatusConflict},
	{services.ErrServiceUnavailable, http.StatusServiceUnavailable},
}

// statusFor maps a service error to its HTTP status
func statusFor(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.kind) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes err as {"error": message}. Unexpected errors are
// reported to sentry and hidden behind a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		logger.Error("Unhandled error", "path", c.FullPath(), "error", err.Error())
		c.JSON(status, gin.H{"error": "Error interno del servidor"})
		return
	}

	body := gin.H{"error": err.Error()}
	var exceeds *statemachine.ExceedsBalanceError
	if errors.As(err, &exceeds) {
		body["requested"] = exceeds.Requested.StringFixed(2)
		body["outstanding"] = exceeds.Outstanding.StringFixed(2)
	}
	c.JSON(status, body)
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// pathID reads a positive numeric path parameter, answering 400 when it is not one
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		badRequest(c, "ID inválido: "+name)
		return 0, false
	}
	return uint(id), true
}

// queryDate parses an optional YYYY-MM-DD query parameter
func queryDate(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := models.ParseDate(raw)
	if err != nil {
		badRequest(c, "Fecha inválida en "+name+", use el formato AAAA-MM-DD")
		return nil, false
	}
	return &t, true
}

// queryWindow reads the from/to query parameters
func queryWindow(c *gin.Context) (models.DateWindow, bool) {
	from, ok := queryDate(c, "from")
	if !ok {
		return models.DateWindow{}, false
	}
	to, ok := queryDate(c, "to")
	if !ok {
		return models.DateWindow{}, false
	}
	return models.DateWindow{From: from, To: to}, true
}

// parseOptionalDate parses a YYYY-MM-DD body field
func parseOptionalDate(c *gin.Context, raw *string, field string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	t, err := models.ParseDate(*raw)
	if err != nil {
		badRequest(c, "Fecha inválida en "+field+", use el formato AAAA-MM-DD")
		return nil, false
	}
	return &t, true
}

// requestContext carries the caller's address and user agent for the audit trail
func requestContext(c *gin.Context) context.Context {
	return services.WithClientInfo(c.Request.Context(), c.ClientIP(), c.Request.UserAgent())
}

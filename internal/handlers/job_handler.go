package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/gestor-negocios-api/internal/services"
)

type JobHandler struct {
	jobService *services.JobService
}

func NewJobHandler(jobSvc *services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobSvc,
	}
}

// Status returns the current worker status
// @Summary Get background job status
// @Description Counters of the background worker that delivers notifications
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} jobs.WorkerStats
// @Router /jobs/status [get]
func (h *JobHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.jobService.GetStatus())
}

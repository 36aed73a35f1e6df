// File: internal/job/handler.go
package job

import (
	"errors"

	"hospital_jobs_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler holds dependencies for job endpoints.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new job handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the job routes under the /api group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/registerjob", h.registerJob)
	router.POST("/getuseruploadedjobs", h.getUserUploadedJobs)
	router.POST("/deletejob", h.deleteJob)
	router.GET("/getjobs", h.getJobs)
	router.GET("/getrecentjobs", h.getRecentJobs)
}

func (h *Handler) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Warn("Invalid request body", zap.String("path", c.Request.URL.Path), zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return false
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return false
	}
	return true
}

func (h *Handler) registerJob(c *gin.Context) {
	var req RegisterJobRequest
	if !h.bind(c, &req) {
		return
	}
	if _, err := h.service.Create(c.Request.Context(), req); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondEmpty(c)
}

func (h *Handler) getUserUploadedJobs(c *gin.Context) {
	var req UserJobsRequest
	if !h.bind(c, &req) {
		return
	}
	ownerID, err := uuid.Parse(req.UserID)
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid userId format."))
		return
	}
	jobs, err := h.service.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondData(c, ToResponses(jobs))
}

func (h *Handler) deleteJob(c *gin.Context) {
	var req DeleteJobRequest
	if !h.bind(c, &req) {
		return
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid jobId format."))
		return
	}
	var requesterID *uuid.UUID
	if req.UserID != "" {
		id, err := uuid.Parse(req.UserID)
		if err != nil {
			common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid userId format."))
			return
		}
		requesterID = &id
	}
	deleted, err := h.service.Delete(c.Request.Context(), jobID, requesterID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondData(c, gin.H{"deleted": deleted})
}

func (h *Handler) getJobs(c *gin.Context) {
	jobs, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondData(c, ToResponses(jobs))
}

func (h *Handler) getRecentJobs(c *gin.Context) {
	jobs, err := h.service.ListRecent(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondData(c, ToResponses(jobs))
}

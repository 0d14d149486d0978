package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "tradeportal/internal/adapter/http/dto/request"
	response "tradeportal/internal/adapter/http/dto/response"
	"tradeportal/internal/adapter/http/middleware"
	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase"
	"tradeportal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobPayload = pkg.NewDomainErrorSimple("VALIDATION", "Invalid job payload", http.StatusBadRequest)
	errMissingIdentity   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
)

// JobHandler handles HTTP requests for the job lifecycle.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// requireActor pulls the authenticated actor off the context; it answers 401
// itself when Identity did not run or did not attach one.
func requireActor(c *gin.Context) (usecase.Actor, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return usecase.Actor{}, false
	}
	return actor, true
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		log.Printf("[job][handler] create failed customer_id=%s err=%v", actor.UserID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(created))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	job, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) ListOpenJobs(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	jobs, err := h.usecase.ListOpen(c.Request.Context(), actor)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.UpdateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), actor, c.Param("job_id"), payload.ToPatch())
	if err != nil {
		log.Printf("[job][handler] update failed job_id=%s err=%v", c.Param("job_id"), err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(updated))
}

func (h *JobHandler) AcceptQuote(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.AcceptQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.AcceptQuote(c.Request.Context(), actor, c.Param("job_id"), payload.QuoteID)
	if err != nil {
		log.Printf("[job][handler] accept-quote failed job_id=%s quote_id=%s err=%v", c.Param("job_id"), payload.QuoteID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(updated))
}

func (h *JobHandler) CompleteJob(c *gin.Context) {
	h.transition(c, h.usecase.Complete)
}

func (h *JobHandler) CancelJob(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

func (h *JobHandler) transition(c *gin.Context, op func(ctx context.Context, actor usecase.Actor, jobID string) (entities.Job, error)) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	updated, err := op(c.Request.Context(), actor, c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(updated))
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), actor, c.Param("job_id")); err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobInput), errors.Is(err, usecase.ErrInvalidJobStatus):
		return pkg.NewDomainErrorSimple("VALIDATION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed to access this job", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("UNKNOWN", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	request "tradeportal/internal/adapter/http/dto/request"
	response "tradeportal/internal/adapter/http/dto/response"
	"tradeportal/internal/usecase"
	"tradeportal/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReviewPayload = pkg.NewDomainErrorSimple("VALIDATION", "Invalid review payload", http.StatusBadRequest)

// ReviewHandler handles review submission and job linking.

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.CreateReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateAndLink(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		log.Printf("[review][handler] create failed job_id=%s customer_id=%s err=%v", payload.JobID, actor.UserID, err)
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromReview(created))
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReviewInput),
		errors.Is(err, usecase.ErrJobNotCompleted),
		errors.Is(err, usecase.ErrJobAlreadyReviewed):
		return pkg.NewDomainErrorSimple("VALIDATION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReviewForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed to review this job", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("UNKNOWN", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

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

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("VALIDATION", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for quotes and quote templates.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateQuote(c.Request.Context(), actor, payload.ToInput(c.Param("job_id")))
	if err != nil {
		log.Printf("[quote][handler] create failed job_id=%s tradesperson_id=%s err=%v", c.Param("job_id"), actor.UserID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(created))
}

func (h *QuoteHandler) ListQuotesByJob(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	quotes, err := h.usecase.ListQuotesByJob(c.Request.Context(), actor, c.Param("job_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) CreateTemplate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.CreateTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateTemplate(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		log.Printf("[template][handler] create failed owner_id=%s err=%v", actor.UserID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteTemplate(created))
}

func (h *QuoteHandler) ListTemplates(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	templates, err := h.usecase.ListTemplates(c.Request.Context(), actor)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteTemplates(templates))
}

func (h *QuoteHandler) UpdateTemplate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateTemplate(c.Request.Context(), actor, c.Param("template_id"), payload.ToPatch())
	if err != nil {
		log.Printf("[template][handler] update failed template_id=%s err=%v", c.Param("template_id"), err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteTemplate(updated))
}

func (h *QuoteHandler) DeleteTemplate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.usecase.DeleteTemplate(c.Request.Context(), actor, c.Param("template_id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func mapQuoteError(err error) *pkg.AppError {
	var limitErr *usecase.TemplateLimitError
	if errors.As(err, &limitErr) {
		return pkg.NewDomainErrorSimple("LIMIT_EXCEEDED", limitErr.Error(), http.StatusForbidden).
			WithDetails(map[string]any{"used": limitErr.Used, "limit": limitErr.Limit})
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteInput), errors.Is(err, usecase.ErrInvalidTemplateInput):
		return pkg.NewDomainErrorSimple("VALIDATION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteForbidden), errors.Is(err, usecase.ErrTemplateForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed to perform this quote operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed to access this job", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Quote template not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("UNKNOWN", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

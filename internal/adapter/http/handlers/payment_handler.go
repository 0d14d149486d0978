package handlers

import (
	"errors"
	"log"
	"net/http"

	request "tradeportal/internal/adapter/http/dto/request"
	response "tradeportal/internal/adapter/http/dto/response"
	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase"
	"tradeportal/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("VALIDATION", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles capture requests and processor-originated events.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CapturePayment triggers capture of the stored intent reference for the
// requested payment type. The response relays the processor's result; the
// job's payment status is advanced separately by RecordProcessorEvent.
func (h *PaymentHandler) CapturePayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.CapturePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	jobID := c.Param("job_id")
	captured, err := h.usecase.Capture(c.Request.Context(), actor, jobID, entities.PaymentType(payload.Type))
	if err != nil {
		log.Printf("[payment][handler] capture failed job_id=%s type=%s err=%v", jobID, payload.Type, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] capture success job_id=%s type=%s provider_status=%s", jobID, payload.Type, captured.ProviderStatus)

	c.JSON(http.StatusOK, response.FromCapturedPayment(captured))
}

// RecordProcessorEvent ingests a settlement callback into the job's payments
// history. Admin only; the processor integration posts through a trusted
// relay carrying an admin credential.
func (h *PaymentHandler) RecordProcessorEvent(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if !actor.IsAdmin() {
		appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Processor events require an admin credential", http.StatusForbidden)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.ProcessorEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.RecordProcessorEvent(c.Request.Context(), payload.ToEvent())
	if err != nil {
		log.Printf("[payment][handler] processor event failed job_id=%s type=%s err=%v", payload.JobID, payload.Type, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] processor event recorded job_id=%s type=%s payment_status=%s", job.ID, payload.Type, job.PaymentStatus)

	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInput),
		errors.Is(err, usecase.ErrNoPaymentIntent),
		errors.Is(err, usecase.ErrDepositNotCaptured),
		errors.Is(err, usecase.ErrIntentReferenceMismatch):
		return pkg.NewDomainErrorSimple("VALIDATION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed to capture payments for this job", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("UNKNOWN", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase/interfaces"
)

var (
	ErrPaymentForbidden        = errors.New("not allowed to capture payments for this job")
	ErrInvalidPaymentInput     = errors.New("invalid payment input")
	ErrNoPaymentIntent         = errors.New("no payment intent reference on job")
	ErrDepositNotCaptured      = errors.New("deposit must be captured before the final payment")
	ErrIntentReferenceMismatch = errors.New("payment intent reference does not match job")
)

// CapturedPayment is the processor's capture result, returned unmodified.
// The authoritative paymentStatus transition happens later via a
// processor-originated event, never inside the capture call.
type CapturedPayment struct {
	JobID            string               `json:"job_id"`
	Type             entities.PaymentType `json:"type"`
	PaymentIntentID  string               `json:"payment_intent_id"`
	ProviderStatus   string               `json:"provider_status"`
	ProviderResponse json.RawMessage      `json:"provider_response,omitempty"`
}

// ProcessorEvent is a processor-originated payment event (e.g. a webhook)
// carrying the settled amount for a previously captured intent.
type ProcessorEvent struct {
	JobID           string
	Type            entities.PaymentType
	Amount          float64
	PaymentIntentID string
	ReceiptURL      string
}

// IPaymentUseCase authorizes and triggers capture against the external
// processor and ingests processor events into the job's payments history.

type IPaymentUseCase interface {
	Capture(ctx context.Context, actor Actor, jobID string, ptype entities.PaymentType) (CapturedPayment, error)
	RecordProcessorEvent(ctx context.Context, ev ProcessorEvent) (entities.Job, error)
}

type PaymentUseCase struct {
	jobs    interfaces.IJobRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(jobs interfaces.IJobRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{jobs: jobs, gateway: gateway}
}

// Capture validates ownership, resolves the stored intent reference for the
// requested type and invokes the processor's capture. It is intentionally
// thin: capturing an already-captured reference is delegated to the
// processor's own idempotency. The ownership check runs on every call.
func (u *PaymentUseCase) Capture(ctx context.Context, actor Actor, jobID string, ptype entities.PaymentType) (CapturedPayment, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return CapturedPayment{}, fmt.Errorf("%w: missing job id", ErrInvalidPaymentInput)
	}
	if !entities.ValidPaymentType(ptype) {
		return CapturedPayment{}, fmt.Errorf("%w: unknown payment type %q", ErrInvalidPaymentInput, ptype)
	}
	if u.gateway == nil {
		return CapturedPayment{}, errors.New("payment gateway not configured")
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		log.Printf("[payment][usecase] load failed job_id=%s err=%v", jobID, err)
		return CapturedPayment{}, err
	}
	if job.ID == "" {
		return CapturedPayment{}, ErrJobNotFound
	}
	if job.CustomerID != actor.UserID && !actor.IsAdmin() {
		log.Printf("[payment][usecase] forbidden job_id=%s caller_id=%s", job.ID, actor.UserID)
		return CapturedPayment{}, ErrPaymentForbidden
	}

	intentRef := job.DepositPaymentIntentID
	if ptype == entities.PaymentTypeFinal {
		intentRef = job.FinalPaymentIntentID
	}
	if intentRef == "" {
		// Nothing to capture; the processor is never contacted.
		return CapturedPayment{}, ErrNoPaymentIntent
	}
	if ptype == entities.PaymentTypeFinal && job.DepositPaymentIntentID != "" && !depositCaptured(job) {
		return CapturedPayment{}, ErrDepositNotCaptured
	}

	log.Printf("[payment][usecase] capture start job_id=%s type=%s intent=%s", job.ID, ptype, intentRef)
	providerStatus, providerResp, err := u.gateway.Capture(ctx, intentRef)
	if err != nil {
		log.Printf("[payment][usecase] capture failed job_id=%s type=%s err=%v", job.ID, ptype, err)
		return CapturedPayment{}, err
	}
	log.Printf("[payment][usecase] capture success job_id=%s type=%s provider_status=%s", job.ID, ptype, providerStatus)

	return CapturedPayment{
		JobID:            job.ID,
		Type:             ptype,
		PaymentIntentID:  intentRef,
		ProviderStatus:   providerStatus,
		ProviderResponse: providerResp,
	}, nil
}

// RecordProcessorEvent appends a payments history entry and advances
// paymentStatus. This is the authoritative transition the capture call
// deliberately does not perform.
func (u *PaymentUseCase) RecordProcessorEvent(ctx context.Context, ev ProcessorEvent) (entities.Job, error) {
	jobID := strings.TrimSpace(ev.JobID)
	if jobID == "" {
		return entities.Job{}, fmt.Errorf("%w: missing job id", ErrInvalidPaymentInput)
	}
	if !entities.ValidPaymentType(ev.Type) {
		return entities.Job{}, fmt.Errorf("%w: unknown payment type %q", ErrInvalidPaymentInput, ev.Type)
	}
	if ev.Amount <= 0 {
		return entities.Job{}, fmt.Errorf("%w: amount must be positive", ErrInvalidPaymentInput)
	}
	if strings.TrimSpace(ev.PaymentIntentID) == "" {
		return entities.Job{}, fmt.Errorf("%w: missing payment intent reference", ErrInvalidPaymentInput)
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	wantRef := job.DepositPaymentIntentID
	if ev.Type == entities.PaymentTypeFinal {
		wantRef = job.FinalPaymentIntentID
	}
	if wantRef == "" || wantRef != strings.TrimSpace(ev.PaymentIntentID) {
		return entities.Job{}, ErrIntentReferenceMismatch
	}

	rec := entities.PaymentRecord{
		Type:            ev.Type,
		Amount:          ev.Amount,
		PaidAt:          time.Now().UTC(),
		PaymentIntentID: wantRef,
		ReceiptURL:      strings.TrimSpace(ev.ReceiptURL),
	}

	status := entities.PaymentStatusFullyPaid
	if ev.Type == entities.PaymentTypeDeposit {
		status = entities.PaymentStatusDepositPaid
		if job.FinalPaymentIntentID != "" {
			status = entities.PaymentStatusPendingFinal
		}
	}

	updated, err := u.jobs.AppendPayment(ctx, job.ID, rec, status)
	if err != nil {
		log.Printf("[payment][usecase] event append failed job_id=%s type=%s err=%v", job.ID, ev.Type, err)
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	log.Printf("[payment][usecase] event recorded job_id=%s type=%s amount=%.2f status=%s", job.ID, ev.Type, ev.Amount, status)
	return updated, nil
}

// depositCaptured reports whether the job's deposit has settled, either via
// a recorded payments entry or an advanced payment status.
func depositCaptured(job entities.Job) bool {
	for _, p := range job.Payments {
		if p.Type == entities.PaymentTypeDeposit {
			return true
		}
	}
	switch job.PaymentStatus {
	case entities.PaymentStatusDepositPaid, entities.PaymentStatusPendingFinal, entities.PaymentStatusFullyPaid:
		return true
	}
	return false
}

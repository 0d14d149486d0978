package request

import (
	"time"

	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase"
)

type JobLocationRequest struct {
	Postcode string `json:"postcode" binding:"required"`
	Town     string `json:"town"`
}

type CreateJobRequest struct {
	Title         string             `json:"title" binding:"required"`
	Description   string             `json:"description"`
	ServiceType   string             `json:"service_type" binding:"required"`
	Specialties   []string           `json:"specialties"`
	Urgency       string             `json:"urgency"`
	Budget        *float64           `json:"budget"`
	Location      JobLocationRequest `json:"location" binding:"required"`
	ScheduledDate *time.Time         `json:"scheduled_date"`
	Photos        []string           `json:"photos"`
}

func (r CreateJobRequest) ToInput() usecase.CreateJobInput {
	return usecase.CreateJobInput{
		Title:         r.Title,
		Description:   r.Description,
		ServiceType:   r.ServiceType,
		Specialties:   r.Specialties,
		Urgency:       entities.Urgency(r.Urgency),
		Budget:        r.Budget,
		Postcode:      r.Location.Postcode,
		Town:          r.Location.Town,
		ScheduledDate: r.ScheduledDate,
		Photos:        r.Photos,
	}
}

// UpdateJobRequest carries a partial update; absent fields stay untouched.
type UpdateJobRequest struct {
	Title                  *string    `json:"title"`
	Description            *string    `json:"description"`
	ServiceType            *string    `json:"service_type"`
	Specialties            *[]string  `json:"specialties"`
	Urgency                *string    `json:"urgency"`
	Budget                 *float64   `json:"budget"`
	Postcode               *string    `json:"postcode"`
	Town                   *string    `json:"town"`
	ScheduledDate          *time.Time `json:"scheduled_date"`
	Photos                 *[]string  `json:"photos"`
	DepositPaymentIntentID *string    `json:"deposit_payment_intent_id"`
	FinalPaymentIntentID   *string    `json:"final_payment_intent_id"`
}

func (r UpdateJobRequest) ToPatch() entities.JobPatch {
	patch := entities.JobPatch{
		Title:                  r.Title,
		Description:            r.Description,
		ServiceType:            r.ServiceType,
		Specialties:            r.Specialties,
		Budget:                 r.Budget,
		Postcode:               r.Postcode,
		Town:                   r.Town,
		ScheduledDate:          r.ScheduledDate,
		Photos:                 r.Photos,
		DepositPaymentIntentID: r.DepositPaymentIntentID,
		FinalPaymentIntentID:   r.FinalPaymentIntentID,
	}
	if r.Urgency != nil {
		u := entities.Urgency(*r.Urgency)
		patch.Urgency = &u
	}
	return patch
}

type AcceptQuoteRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
}

package response

import (
	"time"

	"tradeportal/internal/domain/entities"
)

type JobLocationResponse struct {
	Postcode string `json:"postcode"`
	Town     string `json:"town,omitempty"`
	CitySlug string `json:"city_slug,omitempty"`
}

type PaymentRecordResponse struct {
	Type            string    `json:"type"`
	Amount          float64   `json:"amount"`
	PaidAt          time.Time `json:"paid_at"`
	PaymentIntentID string    `json:"payment_intent_id"`
	ReceiptURL      string    `json:"receipt_url,omitempty"`
}

type JobResponse struct {
	ID                     string                  `json:"id"`
	CustomerID             string                  `json:"customer_id"`
	Title                  string                  `json:"title"`
	Description            string                  `json:"description,omitempty"`
	Urgency                string                  `json:"urgency"`
	ServiceType            string                  `json:"service_type"`
	Specialties            []string                `json:"specialties,omitempty"`
	Location               JobLocationResponse     `json:"location"`
	Budget                 *float64                `json:"budget,omitempty"`
	ScheduledDate          *time.Time              `json:"scheduled_date,omitempty"`
	Status                 string                  `json:"status"`
	Photos                 []string                `json:"photos,omitempty"`
	TradespersonID         string                  `json:"tradesperson_id,omitempty"`
	DepositPaymentIntentID string                  `json:"deposit_payment_intent_id,omitempty"`
	FinalPaymentIntentID   string                  `json:"final_payment_intent_id,omitempty"`
	PaymentStatus          string                  `json:"payment_status"`
	Payments               []PaymentRecordResponse `json:"payments,omitempty"`
	ReviewID               string                  `json:"review_id,omitempty"`
	CreatedAt              time.Time               `json:"created_at"`
	UpdatedAt              time.Time               `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	resp := JobResponse{
		ID:          j.ID,
		CustomerID:  j.CustomerID,
		Title:       j.Title,
		Description: j.Description,
		Urgency:     string(j.Urgency),
		ServiceType: j.ServiceType,
		Specialties: j.Specialties,
		Location: JobLocationResponse{
			Postcode: j.Location.Postcode,
			Town:     j.Location.Town,
			CitySlug: j.Location.CitySlug,
		},
		Budget:                 j.Budget,
		ScheduledDate:          j.ScheduledDate,
		Status:                 string(j.Status),
		Photos:                 j.Photos,
		TradespersonID:         j.TradespersonID,
		DepositPaymentIntentID: j.DepositPaymentIntentID,
		FinalPaymentIntentID:   j.FinalPaymentIntentID,
		PaymentStatus:          string(j.PaymentStatus),
		ReviewID:               j.ReviewID,
		CreatedAt:              j.CreatedAt,
		UpdatedAt:              j.UpdatedAt,
	}
	for _, p := range j.Payments {
		resp.Payments = append(resp.Payments, PaymentRecordResponse{
			Type:            string(p.Type),
			Amount:          p.Amount,
			PaidAt:          p.PaidAt,
			PaymentIntentID: p.PaymentIntentID,
			ReceiptURL:      p.ReceiptURL,
		})
	}
	return resp
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}

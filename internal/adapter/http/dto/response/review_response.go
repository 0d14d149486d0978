package response

import (
	"time"

	"tradeportal/internal/domain/entities"
)

type ReviewResponse struct {
	ID         string    `json:"id"`
	JobID      string    `json:"job_id"`
	CustomerID string    `json:"customer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		JobID:      r.JobID,
		CustomerID: r.CustomerID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

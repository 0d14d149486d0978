package request

import "tradeportal/internal/usecase"

type CreateReviewRequest struct {
	JobID   string `json:"job_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (r CreateReviewRequest) ToInput() usecase.CreateReviewInput {
	return usecase.CreateReviewInput{
		JobID:   r.JobID,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrReviewForbidden    = errors.New("not allowed to review this job")
	ErrInvalidReviewInput = errors.New("invalid review input")
	ErrJobAlreadyReviewed = errors.New("job already has a review")
	ErrJobNotCompleted    = errors.New("only completed jobs can be reviewed")
)

// CreateReviewInput is the domain command for submitting a review.
type CreateReviewInput struct {
	JobID   string
	Rating  int
	Comment string
}

// IReviewUseCase creates the thin review record and links it back onto the
// job. The wider review domain (moderation, responses) is external; only the
// linking contract lives here.

type IReviewUseCase interface {
	CreateAndLink(ctx context.Context, actor Actor, in CreateReviewInput) (entities.Review, error)
}

type ReviewUseCase struct {
	reviews interfaces.IReviewRepository
	jobs    interfaces.IJobRepository
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(reviews interfaces.IReviewRepository, jobs interfaces.IJobRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, jobs: jobs}
}

func (u *ReviewUseCase) CreateAndLink(ctx context.Context, actor Actor, in CreateReviewInput) (entities.Review, error) {
	jobID := strings.TrimSpace(in.JobID)
	if jobID == "" {
		return entities.Review{}, fmt.Errorf("%w: missing job id", ErrInvalidReviewInput)
	}
	if in.Rating < 1 || in.Rating > 5 {
		return entities.Review{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidReviewInput)
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Review{}, err
	}
	if job.ID == "" {
		return entities.Review{}, ErrJobNotFound
	}
	if job.CustomerID != actor.UserID && !actor.IsAdmin() {
		return entities.Review{}, ErrReviewForbidden
	}
	if job.Status != entities.JobStatusCompleted {
		return entities.Review{}, ErrJobNotCompleted
	}
	if job.ReviewID != "" {
		return entities.Review{}, ErrJobAlreadyReviewed
	}

	review := entities.Review{
		ID:         uuid.NewString(),
		JobID:      job.ID,
		CustomerID: job.CustomerID,
		Rating:     in.Rating,
		Comment:    strings.TrimSpace(in.Comment),
		CreatedAt:  time.Now().UTC(),
	}
	created, err := u.reviews.Create(ctx, review)
	if err != nil {
		log.Printf("[review][usecase] create failed job_id=%s err=%v", job.ID, err)
		return entities.Review{}, err
	}

	// Link-back is a merge touching reviewId only, so it cannot clobber
	// concurrent updates to other job fields.
	linked, err := u.jobs.Patch(ctx, job.ID, entities.JobPatch{ReviewID: &created.ID})
	if err != nil {
		log.Printf("[review][usecase] link failed job_id=%s review_id=%s err=%v", job.ID, created.ID, err)
		return entities.Review{}, err
	}
	if linked.ID == "" {
		// The job vanished before the link merge landed.
		log.Printf("[review][usecase] link target gone job_id=%s review_id=%s", job.ID, created.ID)
		return entities.Review{}, ErrJobNotFound
	}
	log.Printf("[review][usecase] linked job_id=%s review_id=%s rating=%d", job.ID, created.ID, created.Rating)
	return created, nil
}

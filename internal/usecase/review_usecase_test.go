package usecase

import (
	"context"
	"errors"
	"testing"

	"tradeportal/internal/domain/entities"
	mock_interfaces "tradeportal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func completedJob() entities.Job {
	return entities.Job{ID: "job-1", CustomerID: "cust-1", Status: entities.JobStatusCompleted}
}

func TestReviewUseCase_CreateAndLink(t *testing.T) {
	t.Run("rating out of range", func(t *testing.T) {
		uc := NewReviewUseCase(nil, nil)
		for _, rating := range []int{0, 6, -1} {
			_, err := uc.CreateAndLink(context.Background(), customerActor, CreateReviewInput{JobID: "job-1", Rating: rating})
			if !errors.Is(err, ErrInvalidReviewInput) {
				t.Fatalf("rating %d: expected ErrInvalidReviewInput, got %v", rating, err)
			}
		}
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewReviewUseCase(nil, jobs)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(completedJob(), nil)

		other := Actor{UserID: "cust-2", Role: entities.RoleCustomer}
		_, err := uc.CreateAndLink(context.Background(), other, CreateReviewInput{JobID: "job-1", Rating: 5})
		if !errors.Is(err, ErrReviewForbidden) {
			t.Fatalf("expected ErrReviewForbidden, got %v", err)
		}
	})

	t.Run("only completed jobs reviewable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewReviewUseCase(nil, jobs)

		job := completedJob()
		job.Status = entities.JobStatusAssigned
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)

		_, err := uc.CreateAndLink(context.Background(), customerActor, CreateReviewInput{JobID: "job-1", Rating: 4})
		if !errors.Is(err, ErrJobNotCompleted) {
			t.Fatalf("expected ErrJobNotCompleted, got %v", err)
		}
	})

	t.Run("second review rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewReviewUseCase(nil, jobs)

		job := completedJob()
		job.ReviewID = "rev-1"
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)

		_, err := uc.CreateAndLink(context.Background(), customerActor, CreateReviewInput{JobID: "job-1", Rating: 4})
		if !errors.Is(err, ErrJobAlreadyReviewed) {
			t.Fatalf("expected ErrJobAlreadyReviewed, got %v", err)
		}
	})

	t.Run("creates and links back onto the job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		uc := NewReviewUseCase(reviews, jobs)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(completedJob(), nil)
		reviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) {
				if r.CustomerID != "cust-1" || r.JobID != "job-1" {
					t.Fatalf("unexpected review: %+v", r)
				}
				return r, nil
			})
		jobs.EXPECT().Patch(gomock.Any(), "job-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, p entities.JobPatch) (entities.Job, error) {
				if p.ReviewID == nil || *p.ReviewID == "" {
					t.Fatalf("expected review id in link patch, got %+v", p)
				}
				if p.Status != nil || p.Title != nil {
					t.Fatalf("link patch must touch review id only, got %+v", p)
				}
				return completedJob(), nil
			})

		created, err := uc.CreateAndLink(context.Background(), customerActor, CreateReviewInput{
			JobID: "job-1", Rating: 5, Comment: "Tidy work, on time",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Rating != 5 {
			t.Fatalf("expected rating kept, got %d", created.Rating)
		}
	})

	t.Run("link failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		uc := NewReviewUseCase(reviews, jobs)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(completedJob(), nil)
		reviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) { return r, nil })
		jobs.EXPECT().Patch(gomock.Any(), "job-1", gomock.Any()).Return(entities.Job{}, errors.New("conditional check failed"))

		_, err := uc.CreateAndLink(context.Background(), customerActor, CreateReviewInput{JobID: "job-1", Rating: 5})
		if err == nil {
			t.Fatal("expected link error to propagate")
		}
	})

	t.Run("job deleted before the link merge lands", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		reviews := mock_interfaces.NewMockIReviewRepository(ctrl)
		uc := NewReviewUseCase(reviews, jobs)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(completedJob(), nil)
		reviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Review) (entities.Review, error) { return r, nil })
		// Conditional write misses because the row is gone; the repository
		// reports that as a zero-value job with no error.
		jobs.EXPECT().Patch(gomock.Any(), "job-1", gomock.Any()).Return(entities.Job{}, nil)

		_, err := uc.CreateAndLink(context.Background(), customerActor, CreateReviewInput{JobID: "job-1", Rating: 5})
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

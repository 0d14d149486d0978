package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"tradeportal/internal/domain/entities"
	mock_interfaces "tradeportal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func jobWithIntents() entities.Job {
	return entities.Job{
		ID:                     "job-1",
		CustomerID:             "cust-1",
		Status:                 entities.JobStatusAssigned,
		PaymentStatus:          entities.PaymentStatusNone,
		DepositPaymentIntentID: "pi-dep-1",
		FinalPaymentIntentID:   "pi-fin-1",
	}
}

func TestPaymentUseCase_Capture(t *testing.T) {
	t.Run("unknown payment type never contacts the processor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, gateway)

		_, err := uc.Capture(context.Background(), customerActor, "job-1", "partial")
		if !errors.Is(err, ErrInvalidPaymentInput) {
			t.Fatalf("expected ErrInvalidPaymentInput, got %v", err)
		}
	})

	t.Run("non-owner forbidden even with a valid intent reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(jobs, gateway)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWithIntents(), nil)

		stranger := Actor{UserID: "tp-1", Role: entities.RoleTradesperson}
		_, err := uc.Capture(context.Background(), stranger, "job-1", entities.PaymentTypeDeposit)
		if !errors.Is(err, ErrPaymentForbidden) {
			t.Fatalf("expected ErrPaymentForbidden, got %v", err)
		}
	})

	t.Run("missing intent reference never contacts the processor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(jobs, gateway)

		job := jobWithIntents()
		job.DepositPaymentIntentID = ""
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)

		_, err := uc.Capture(context.Background(), customerActor, "job-1", entities.PaymentTypeDeposit)
		if !errors.Is(err, ErrNoPaymentIntent) {
			t.Fatalf("expected ErrNoPaymentIntent, got %v", err)
		}
	})

	t.Run("final blocked until deposit captured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(jobs, gateway)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWithIntents(), nil)

		_, err := uc.Capture(context.Background(), customerActor, "job-1", entities.PaymentTypeFinal)
		if !errors.Is(err, ErrDepositNotCaptured) {
			t.Fatalf("expected ErrDepositNotCaptured, got %v", err)
		}
	})

	t.Run("final allowed after deposit settled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(jobs, gateway)

		job := jobWithIntents()
		job.PaymentStatus = entities.PaymentStatusDepositPaid
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		gateway.EXPECT().Capture(gomock.Any(), "pi-fin-1").Return("approved", json.RawMessage(`{"status":"approved"}`), nil)

		captured, err := uc.Capture(context.Background(), customerActor, "job-1", entities.PaymentTypeFinal)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.PaymentIntentID != "pi-fin-1" || captured.ProviderStatus != "approved" {
			t.Fatalf("unexpected result: %+v", captured)
		}
	})

	t.Run("capture result relayed without touching payment status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(jobs, gateway)

		// No Patch or AppendPayment expectation: capture must not write.
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWithIntents(), nil)
		gateway.EXPECT().Capture(gomock.Any(), "pi-dep-1").Return("in_process", json.RawMessage(`{}`), nil)

		captured, err := uc.Capture(context.Background(), customerActor, "job-1", entities.PaymentTypeDeposit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.ProviderStatus != "in_process" {
			t.Fatalf("expected provider status relayed, got %q", captured.ProviderStatus)
		}
	})

	t.Run("gateway error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(jobs, gateway)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWithIntents(), nil)
		gateway.EXPECT().Capture(gomock.Any(), "pi-dep-1").Return("", nil, errors.New("processor timeout"))

		_, err := uc.Capture(context.Background(), customerActor, "job-1", entities.PaymentTypeDeposit)
		if err == nil || err.Error() != "processor timeout" {
			t.Fatalf("expected processor error, got %v", err)
		}
	})
}

func TestPaymentUseCase_RecordProcessorEvent(t *testing.T) {
	t.Run("intent reference mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewPaymentUseCase(jobs, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWithIntents(), nil)

		_, err := uc.RecordProcessorEvent(context.Background(), ProcessorEvent{
			JobID: "job-1", Type: entities.PaymentTypeDeposit, Amount: 50, PaymentIntentID: "pi-other",
		})
		if !errors.Is(err, ErrIntentReferenceMismatch) {
			t.Fatalf("expected ErrIntentReferenceMismatch, got %v", err)
		}
	})

	t.Run("deposit event moves to pending_final when final ref exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewPaymentUseCase(jobs, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWithIntents(), nil)
		jobs.EXPECT().AppendPayment(gomock.Any(), "job-1", gomock.Any(), entities.PaymentStatusPendingFinal).DoAndReturn(
			func(_ context.Context, _ string, rec entities.PaymentRecord, status entities.JobPaymentStatus) (entities.Job, error) {
				if rec.Type != entities.PaymentTypeDeposit || rec.Amount != 50 {
					t.Fatalf("unexpected record: %+v", rec)
				}
				job := jobWithIntents()
				job.PaymentStatus = status
				job.Payments = []entities.PaymentRecord{rec}
				return job, nil
			})

		updated, err := uc.RecordProcessorEvent(context.Background(), ProcessorEvent{
			JobID: "job-1", Type: entities.PaymentTypeDeposit, Amount: 50, PaymentIntentID: "pi-dep-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.PaymentStatus != entities.PaymentStatusPendingFinal {
			t.Fatalf("expected pending_final, got %s", updated.PaymentStatus)
		}
	})

	t.Run("deposit event without final ref moves to deposit_paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewPaymentUseCase(jobs, nil)

		job := jobWithIntents()
		job.FinalPaymentIntentID = ""
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		jobs.EXPECT().AppendPayment(gomock.Any(), "job-1", gomock.Any(), entities.PaymentStatusDepositPaid).Return(job, nil)

		_, err := uc.RecordProcessorEvent(context.Background(), ProcessorEvent{
			JobID: "job-1", Type: entities.PaymentTypeDeposit, Amount: 50, PaymentIntentID: "pi-dep-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("final event moves to fully_paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewPaymentUseCase(jobs, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWithIntents(), nil)
		jobs.EXPECT().AppendPayment(gomock.Any(), "job-1", gomock.Any(), entities.PaymentStatusFullyPaid).Return(jobWithIntents(), nil)

		_, err := uc.RecordProcessorEvent(context.Background(), ProcessorEvent{
			JobID: "job-1", Type: entities.PaymentTypeFinal, Amount: 200, PaymentIntentID: "pi-fin-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.RecordProcessorEvent(context.Background(), ProcessorEvent{
			JobID: "job-1", Type: entities.PaymentTypeDeposit, Amount: 0, PaymentIntentID: "pi-dep-1",
		})
		if !errors.Is(err, ErrInvalidPaymentInput) {
			t.Fatalf("expected ErrInvalidPaymentInput, got %v", err)
		}
	})

	t.Run("job deleted between load and append", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewPaymentUseCase(jobs, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWithIntents(), nil)
		// Conditional write misses because the row is gone; the repository
		// reports that as a zero-value job with no error.
		jobs.EXPECT().AppendPayment(gomock.Any(), "job-1", gomock.Any(), entities.PaymentStatusPendingFinal).Return(entities.Job{}, nil)

		_, err := uc.RecordProcessorEvent(context.Background(), ProcessorEvent{
			JobID: "job-1", Type: entities.PaymentTypeDeposit, Amount: 50, PaymentIntentID: "pi-dep-1",
		})
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

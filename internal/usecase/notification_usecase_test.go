package usecase

import (
	"context"
	"errors"
	"testing"

	"tradeportal/internal/domain/entities"
	mock_interfaces "tradeportal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationFanout_Notify(t *testing.T) {
	t.Run("one in-app and one email per provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		email := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewNotificationFanout(repo, email, nil)

		job := leedsBoilerJob()
		job.Urgency = entities.UrgencyFlexible
		buckets := TierBuckets{
			Pro:   []entities.User{{ID: "p-1", Email: "p1@example.com"}},
			Basic: []entities.User{{ID: "p-2", Email: "p2@example.com"}},
		}

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, nil).Times(2)
		email.EXPECT().SendNewJobAlertEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		results := uc.Notify(context.Background(), job, buckets)
		if len(results) != 4 {
			t.Fatalf("expected 4 attempts, got %d", len(results))
		}
		for _, r := range results {
			if !r.Delivered {
				t.Fatalf("expected delivery, got failure for %s/%s: %v", r.ProviderID, r.Channel, r.Err)
			}
		}
	})

	t.Run("email failure does not block in-app or other providers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		email := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewNotificationFanout(repo, email, nil)

		job := leedsBoilerJob()
		job.Urgency = entities.UrgencySoon
		buckets := TierBuckets{Basic: []entities.User{{ID: "p-1"}, {ID: "p-2"}}}

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, nil).Times(2)
		email.EXPECT().SendNewJobAlertEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down")).Times(2)

		results := uc.Notify(context.Background(), job, buckets)

		delivered := 0
		for _, r := range results {
			if r.Delivered {
				delivered++
			}
		}
		if delivered != 2 {
			t.Fatalf("expected the 2 in-app writes to succeed, got %d delivered", delivered)
		}
	})

	t.Run("sms only for urgent jobs with a phone number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		email := mock_interfaces.NewMockIEmailSender(ctrl)
		sms := mock_interfaces.NewMockISMSSender(ctrl)
		uc := NewNotificationFanout(repo, email, sms)

		job := leedsBoilerJob()
		job.Urgency = entities.UrgencyEmergency
		buckets := TierBuckets{Basic: []entities.User{
			{ID: "p-phone", Phone: "+447700900123"},
			{ID: "p-nophone"},
		}}

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, nil).Times(2)
		email.EXPECT().SendNewJobAlertEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		sms.EXPECT().SendNewJobAlertSMS(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

		results := uc.Notify(context.Background(), job, buckets)
		if len(results) != 5 {
			t.Fatalf("expected 5 attempts (2 inapp + 2 email + 1 sms), got %d", len(results))
		}
	})

	t.Run("flexible job never sends sms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		email := mock_interfaces.NewMockIEmailSender(ctrl)
		sms := mock_interfaces.NewMockISMSSender(ctrl)
		uc := NewNotificationFanout(repo, email, sms)

		job := leedsBoilerJob()
		job.Urgency = entities.UrgencyFlexible
		buckets := TierBuckets{Basic: []entities.User{{ID: "p-1", Phone: "+447700900123"}}}

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, nil)
		email.EXPECT().SendNewJobAlertEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		results := uc.Notify(context.Background(), job, buckets)
		if len(results) != 2 {
			t.Fatalf("expected 2 attempts, got %d", len(results))
		}
	})

	t.Run("empty buckets is a no-op", func(t *testing.T) {
		uc := NewNotificationFanout(nil, nil, nil)
		results := uc.Notify(context.Background(), leedsBoilerJob(), TierBuckets{})
		if len(results) != 0 {
			t.Fatalf("expected no attempts, got %d", len(results))
		}
	})
}

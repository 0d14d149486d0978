package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// DeliveryChannel names one of the fan-out side effects.

type DeliveryChannel string

const (
	ChannelInApp DeliveryChannel = "inapp"
	ChannelEmail DeliveryChannel = "email"
	ChannelSMS   DeliveryChannel = "sms"
)

// DeliveryResult is the explicit outcome of one fire-and-forget attempt.
// Failures are collected and logged, never propagated to the job-creation
// caller.
type DeliveryResult struct {
	ProviderID string
	Channel    DeliveryChannel
	Delivered  bool
	Err        error
}

// INotificationFanout dispatches a new job to every matched provider.
//
// Per provider: one in-app notification write and one email attempt, each
// independent. At most one attempt per provider per channel; no retries.

type INotificationFanout interface {
	Notify(ctx context.Context, job entities.Job, buckets TierBuckets) []DeliveryResult
}

type NotificationFanout struct {
	notifications interfaces.INotificationRepository
	email         interfaces.IEmailSender
	sms           interfaces.ISMSSender
}

var _ INotificationFanout = (*NotificationFanout)(nil)

// NewNotificationFanout wires the fan-out. sms may be nil; SMS alerts are an
// optional channel for emergency/urgent jobs only.
func NewNotificationFanout(notifications interfaces.INotificationRepository, email interfaces.IEmailSender, sms interfaces.ISMSSender) *NotificationFanout {
	return &NotificationFanout{notifications: notifications, email: email, sms: sms}
}

func (u *NotificationFanout) Notify(ctx context.Context, job entities.Job, buckets TierBuckets) []DeliveryResult {
	providers := buckets.All()
	results := make([]DeliveryResult, 0, len(providers)*2)

	for _, p := range providers {
		results = append(results, u.notifyInApp(ctx, p, job))
		results = append(results, u.notifyEmail(ctx, p, job))
		if smsEligible(job) && p.Phone != "" && u.sms != nil {
			results = append(results, u.notifySMS(ctx, p, job))
		}
	}

	for _, r := range results {
		if !r.Delivered {
			log.Printf("[fanout][usecase] delivery failed job_id=%s provider_id=%s channel=%s err=%v",
				job.ID, r.ProviderID, r.Channel, r.Err)
		}
	}
	log.Printf("[fanout][usecase] done job_id=%s providers=%d attempts=%d", job.ID, len(providers), len(results))
	return results
}

func (u *NotificationFanout) notifyInApp(ctx context.Context, p entities.User, job entities.Job) DeliveryResult {
	res := DeliveryResult{ProviderID: p.ID, Channel: ChannelInApp}
	if u.notifications == nil {
		res.Err = fmt.Errorf("notification store not configured")
		return res
	}

	n := entities.Notification{
		ID:          uuid.NewString(),
		RecipientID: p.ID,
		Type:        entities.NotificationNewJob,
		Message:     fmt.Sprintf("New %s job: %s", job.ServiceType, job.Title),
		Metadata: map[string]string{
			"job_id":   job.ID,
			"urgency":  string(job.Urgency),
			"postcode": job.Location.Postcode,
		},
		CreatedAt: time.Now().UTC(),
	}
	if _, err := u.notifications.Create(ctx, n); err != nil {
		res.Err = err
		return res
	}
	res.Delivered = true
	return res
}

func (u *NotificationFanout) notifyEmail(ctx context.Context, p entities.User, job entities.Job) DeliveryResult {
	res := DeliveryResult{ProviderID: p.ID, Channel: ChannelEmail}
	if u.email == nil {
		res.Err = fmt.Errorf("email sender not configured")
		return res
	}
	if err := u.email.SendNewJobAlertEmail(ctx, p, job); err != nil {
		res.Err = err
		return res
	}
	res.Delivered = true
	return res
}

func (u *NotificationFanout) notifySMS(ctx context.Context, p entities.User, job entities.Job) DeliveryResult {
	res := DeliveryResult{ProviderID: p.ID, Channel: ChannelSMS}
	if err := u.sms.SendNewJobAlertSMS(ctx, p, job); err != nil {
		res.Err = err
		return res
	}
	res.Delivered = true
	return res
}

func smsEligible(job entities.Job) bool {
	return job.Urgency == entities.UrgencyEmergency || job.Urgency == entities.UrgencyUrgent
}

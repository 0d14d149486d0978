package email

import (
	"context"
	"log"

	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase/interfaces"
)

// LogSender implements IEmailSender by logging the alert. Actual delivery
// belongs to the outbound email collaborator outside this service; in local
// and test environments the log line is the whole effect.
type LogSender struct{}

var _ interfaces.IEmailSender = (*LogSender)(nil)

func NewLogSender() *LogSender { return &LogSender{} }

func (s *LogSender) SendNewJobAlertEmail(_ context.Context, provider entities.User, job entities.Job) error {
	log.Printf("[alerts][email] new-job alert to=%s job_id=%s title=%q service_type=%s urgency=%s",
		provider.Email, job.ID, job.Title, job.ServiceType, job.Urgency)
	return nil
}

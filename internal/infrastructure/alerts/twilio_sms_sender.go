package alerts

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase/interfaces"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrMissingTwilioCredentials = errors.New("missing TWILIO_ACCOUNT_SID/TWILIO_AUTH_TOKEN")

// TwilioSMSSender sends the emergency/urgent job SMS alert. Like every
// fan-out channel it is best-effort: callers log failures and move on.
type TwilioSMSSender struct {
	client   *twilio.RestClient
	from     string
	mockMode bool
}

var _ interfaces.ISMSSender = (*TwilioSMSSender)(nil)

func NewTwilioSMSSender() (*TwilioSMSSender, error) {
	if isSMSMockEnabled() {
		log.Printf("[alerts][sms] mock mode enabled")
		return &TwilioSMSSender{mockMode: true}, nil
	}

	sid := os.Getenv("TWILIO_ACCOUNT_SID")
	token := os.Getenv("TWILIO_AUTH_TOKEN")
	if sid == "" || token == "" {
		return nil, ErrMissingTwilioCredentials
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: sid,
		Password: token,
	})
	return &TwilioSMSSender{client: client, from: os.Getenv("TWILIO_FROM_NUMBER")}, nil
}

func (s *TwilioSMSSender) SendNewJobAlertSMS(_ context.Context, provider entities.User, job entities.Job) error {
	body := fmt.Sprintf("New %s job near %s: %s", job.Urgency, job.Location.Postcode, job.Title)

	if s.mockMode {
		log.Printf("[alerts][sms] mock send to=%s job_id=%s", provider.Phone, job.ID)
		return nil
	}
	if s.client == nil {
		return ErrMissingTwilioCredentials
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(provider.Phone)
	params.SetFrom(s.from)
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	log.Printf("[alerts][sms] sent to=%s job_id=%s", provider.Phone, job.ID)
	return nil
}

func isSMSMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("SMS_ALERTS_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

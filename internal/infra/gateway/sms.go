package gateway

import (
	"context"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"parkgate/internal/pkg/config"
	"parkgate/internal/pkg/errs"
	"parkgate/internal/usecase"
)

type TwilioSender struct {
	client *twilio.RestClient
	cfg    config.SMSConfig
}

func NewTwilioSender(cfg config.Config) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.SMS.AccountSID,
		Password: cfg.SMS.AuthToken,
	})
	return &TwilioSender{client: client, cfg: cfg.SMS}
}

func (s *TwilioSender) Send(_ context.Context, to, body string) (*usecase.SMSResult, error) {
	if !s.cfg.Configured() {
		return nil, errs.New("sms provider not configured")
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.cfg.From)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create sms message")
	}

	result := &usecase.SMSResult{ErrorCode: resp.ErrorCode}
	if resp.Status != nil {
		result.Status = *resp.Status
	}
	return result, nil
}

package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devevents/internal/domain"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = params
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestTemplateRenderer_RegistrationConfirmation(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.RegistrationConfirmationEmailData{
		Email:      "ada@example.com",
		Name:       "Ada & Co",
		TicketID:   "2b1f0e0c-8a34-4a8e-9e36-2f1f7b0b9b10",
		EventTitle: "Tech Summit",
		Date:       "2025-03-14",
		Time:       "10:00",
		Location:   "Pune",
		Address:    "1 Main St",
	}

	subject, html, text, err := r.Render("registration_confirmation", data)
	require.NoError(t, err)
	assert.Equal(t, "You're registered for Tech Summit", subject)
	assert.Contains(t, html, "Ada &amp; Co")
	assert.Contains(t, html, data.TicketID)
	assert.Contains(t, text, "Ada & Co")
	assert.Contains(t, text, "2025-03-14 10:00")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	_, _, _, err := NewTemplateRenderer().Render("missing", nil)
	require.Error(t, err)
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, "events@example.com", "DevEvents", discardLogger)

	require.NoError(t, m.Send(context.Background(), "ada@example.com", "Hi", "<p>hi</p>", ""))
	require.NotNil(t, client.input)
	assert.Equal(t, "DevEvents <events@example.com>", aws.ToString(client.input.Source))
	assert.Equal(t, []string{"ada@example.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Hi", aws.ToString(client.input.Message.Subject.Data))
	assert.Equal(t, "<p>hi</p>", aws.ToString(client.input.Message.Body.Html.Data))
	assert.Nil(t, client.input.Message.Body.Text)
}

func TestSESMailer_SendError(t *testing.T) {
	boom := errors.New("throttled")
	m := newSESMailer(&fakeSES{err: boom}, "events@example.com", "", discardLogger)

	err := m.Send(context.Background(), "ada@example.com", "Hi", "", "hi")
	require.ErrorIs(t, err, boom)
}

func TestNewMailer(t *testing.T) {
	m, err := NewMailer(MailerConfig{Provider: "noop"}, discardLogger)
	require.NoError(t, err)
	require.NoError(t, m.Send(context.Background(), "a@example.com", "s", "h", "t"))

	m, err = NewMailer(MailerConfig{Provider: "carrier-pigeon"}, discardLogger)
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)

	_, err = NewMailer(MailerConfig{Provider: "ses"}, discardLogger)
	require.Error(t, err)

	m, err = NewMailer(MailerConfig{
		Provider:    "ses",
		FromAddress: "events@example.com",
		SES:         SESConfig{Region: "us-east-1", AccessKeyID: "id", SecretAccessKey: "secret"},
	}, discardLogger)
	require.NoError(t, err)
	assert.IsType(t, &sesMailer{}, m)
}

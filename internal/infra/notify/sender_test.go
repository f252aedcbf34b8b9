//go:build unit

package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/KingCastle/Javan/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSender(t *testing.T) {
	s, err := NewSender(config.NotifyConfig{Driver: DriverLog})
	require.NoError(t, err)
	assert.IsType(t, &LogSender{}, s)

	s, err = NewSender(config.NotifyConfig{Driver: DriverSMTP, SMTP: config.SMTPConfig{Host: "mail", Port: 587}})
	require.NoError(t, err)
	assert.IsType(t, &SMTPSender{}, s)

	_, err = NewSender(config.NotifyConfig{Driver: "pigeon"})
	assert.Error(t, err)
}

func TestLogSender(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogSender(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := s.Send(context.Background(), Message{To: []string{"a@example.com", "b@example.com"}, Subject: "Hello"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"to":"a@example.com,b@example.com"`)
	assert.Contains(t, buf.String(), `"subject":"Hello"`)
}

func TestSMTPSender(t *testing.T) {
	s := NewSMTPSender(config.SMTPConfig{Host: "localhost", Port: 1025, From: "no-reply@example.com"})

	t.Run("address and anonymous auth", func(t *testing.T) {
		assert.Equal(t, "localhost:1025", s.addr)
		assert.Nil(t, s.auth)
	})

	t.Run("credentials enable plain auth", func(t *testing.T) {
		authed := NewSMTPSender(config.SMTPConfig{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p"})
		assert.NotNil(t, authed.auth)
	})

	t.Run("renders CRLF headers and body", func(t *testing.T) {
		raw := string(s.render(Message{
			To:      []string{"ada@example.com", "ops@example.com"},
			Subject: "Your booking",
			Body:    "line one\nline two\n",
		}))

		assert.Contains(t, raw, "From: no-reply@example.com\r\n")
		assert.Contains(t, raw, "To: ada@example.com, ops@example.com\r\n")
		assert.Contains(t, raw, "Subject: Your booking\r\n")
		assert.Contains(t, raw, "\r\n\r\nline one\r\nline two\r\n")
	})

	t.Run("no recipients", func(t *testing.T) {
		assert.Error(t, s.Send(context.Background(), Message{Subject: "nobody"}))
	})
}

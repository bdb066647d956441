package email

import (
	"context"
	"strings"
	"testing"

	"go-portfolio-backend/config"

	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	return &config.Config{
		SMTPHost:           "smtp.example.com",
		SMTPPort:           "587",
		SMTPUsername:       "portfolio@example.com",
		SMTPPassword:       "app-password",
		ContactEmailTo:     "owner@example.com",
		SMTPTimeoutSeconds: 1,
	}
}

func TestRenderNotification(t *testing.T) {
	data := notificationData{
		Name:    "John Doe",
		Email:   "john@example.com",
		Message: "I would like to talk about a project.",
	}

	body, err := render(notificationTmpl, data)
	assert.NoError(t, err)

	// The owner alert must carry the submission verbatim
	assert.Contains(t, body, "John Doe")
	assert.Contains(t, body, "john@example.com")
	assert.Contains(t, body, "I would like to talk about a project.")
	assert.Contains(t, body, "Nuevo mensaje desde el portfolio")
}

func TestRenderNotificationEscapesHTML(t *testing.T) {
	data := notificationData{
		Name:    "John Doe",
		Email:   "john@example.com",
		Message: "<script>alert(1)</script>",
	}

	body, err := render(notificationTmpl, data)
	assert.NoError(t, err)

	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestRenderConfirmation(t *testing.T) {
	body, err := render(confirmationTmpl, confirmationData{Name: "John Doe"})
	assert.NoError(t, err)

	assert.Contains(t, body, "Hola John Doe,")
	assert.Contains(t, body, "Gracias por tu mensaje")
}

func TestBuildMessage(t *testing.T) {
	s := NewService(testConfig())

	t.Run("Should set Reply-To when provided", func(t *testing.T) {
		msg := string(s.buildMessage("owner@example.com", notificationSubject, "john@example.com", "<p>hi</p>"))
		assert.Contains(t, msg, "Reply-To: john@example.com\r\n")
		assert.Contains(t, msg, "Subject: Nuevo mensaje desde el portfolio\r\n")
		assert.Contains(t, msg, "Content-Type: text/html; charset=UTF-8\r\n")
		assert.True(t, strings.HasSuffix(msg, "\r\n<p>hi</p>"))
	})

	t.Run("Should omit Reply-To for the confirmation", func(t *testing.T) {
		msg := string(s.buildMessage("john@example.com", confirmationSubject, "", "<p>hi</p>"))
		assert.NotContains(t, msg, "Reply-To:")
	})
}

func TestIsConfigured(t *testing.T) {
	assert.True(t, NewService(testConfig()).IsConfigured())

	cfg := testConfig()
	cfg.SMTPPassword = ""
	assert.False(t, NewService(cfg).IsConfigured())

	cfg = testConfig()
	cfg.ContactEmailTo = ""
	assert.False(t, NewService(cfg).IsConfigured())
}

func TestSendUnconfigured(t *testing.T) {
	cfg := testConfig()
	cfg.SMTPUsername = ""
	cfg.SMTPPassword = ""
	s := NewService(cfg)

	err := s.SendConfirmation(context.Background(), "John Doe", "john@example.com")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestFromFallsBackToUsername(t *testing.T) {
	cfg := testConfig()
	cfg.SMTPFromEmail = ""
	s := NewService(cfg)
	assert.Equal(t, "portfolio@example.com", s.fromEmail)

	cfg.SMTPFromEmail = "noreply@example.com"
	s = NewService(cfg)
	assert.Equal(t, "noreply@example.com", s.fromEmail)
}

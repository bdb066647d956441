package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"go-portfolio-backend/config"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	os.Exit(m.Run())
}

// outcome mirrors the JSON contract consumed by the frontend
type outcome struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

type stubMailer struct {
	confirmationErr error
	notificationErr error
}

func (s *stubMailer) SendConfirmation(ctx context.Context, name, to string) error {
	return s.confirmationErr
}

func (s *stubMailer) SendNotification(ctx context.Context, name, email, message string) error {
	return s.notificationErr
}

type failingRepo struct{}

func (r *failingRepo) Save(ctx context.Context, req *domain.ContactRequest) (*domain.StoredContact, error) {
	return nil, errors.New("connection refused")
}

func testRouter(repo domain.ContactRepository, mailer domain.Mailer) *gin.Engine {
	validate := validator.New()
	validation.RegisterValidators(validate)
	contactUC := usecase.NewContactUsecase(repo, mailer, validate)

	cfg := &config.Config{
		FrontendURL:              "http://localhost:3000",
		RateLimitWindowSeconds:   60,
		RateLimitContactLimit:    10000,
		RateLimitGlobalThreshold: 10000,
	}
	return v1.NewRouter(v1.RouterDeps{ContactUC: contactUC, Config: cfg})
}

func doRequest(r *gin.Engine, method, path string, body []byte) (*httptest.ResponseRecorder, outcome) {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out outcome
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestSubmitContactEndpoint(t *testing.T) {
	router := testRouter(nil, &stubMailer{})

	t.Run("Should accept a valid submission", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"name":    "John Doe",
			"email":   "john@example.com",
			"message": "This is a long enough message.",
		})
		w, out := doRequest(router, http.MethodPost, "/v1/contact", body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, out.Success)
		assert.Equal(t, "Message sent successfully!", out.Message)
		assert.Empty(t, out.Error)
	})

	t.Run("Should reject invalid fields with per-field details", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"name":    "A",
			"email":   "bad",
			"message": "hi",
		})
		w, out := doRequest(router, http.MethodPost, "/v1/contact", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, out.Success)
		assert.Equal(t, "Validation failed", out.Error)
		assert.Len(t, out.Details, 3)
		assert.Contains(t, out.Details, "name")
		assert.Contains(t, out.Details, "email")
		assert.Contains(t, out.Details, "message")
	})

	t.Run("Should reject a malformed body as a validation failure", func(t *testing.T) {
		w, out := doRequest(router, http.MethodPost, "/v1/contact", []byte(`{"name":`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, out.Success)
		assert.Equal(t, "Validation failed", out.Error)
	})

	t.Run("Should reject non-POST methods", func(t *testing.T) {
		w, out := doRequest(router, http.MethodGet, "/v1/contact", nil)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.False(t, out.Success)
		assert.Equal(t, "Method not allowed", out.Error)
	})
}

func TestSubmitContactFailurePolicy(t *testing.T) {
	t.Run("Should still succeed when both emails fail", func(t *testing.T) {
		router := testRouter(nil, &stubMailer{
			confirmationErr: errors.New("smtp down"),
			notificationErr: errors.New("smtp down"),
		})

		body, _ := json.Marshal(map[string]string{
			"name":    "John Doe",
			"email":   "john@example.com",
			"message": "This is a long enough message.",
		})
		w, out := doRequest(router, http.MethodPost, "/v1/contact", body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, out.Success)
		assert.Equal(t, "Message sent successfully!", out.Message)
	})

	t.Run("Should fail with 500 when the database write fails", func(t *testing.T) {
		router := testRouter(&failingRepo{}, &stubMailer{})

		body, _ := json.Marshal(map[string]string{
			"name":    "John Doe",
			"email":   "john@example.com",
			"message": "This is a long enough message.",
		})
		w, out := doRequest(router, http.MethodPost, "/v1/contact", body)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, out.Success)
		assert.Equal(t, "Failed to save contact to database", out.Error)
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(nil, &stubMailer{})

	w, out := doRequest(router, http.MethodGet, "/v1/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, out.Success)
	assert.Equal(t, "System operational", out.Message)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
}

package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const saveTimeout = 5 * time.Second

type contactUsecase struct {
	repo     domain.ContactRepository // nil when persistence is disabled
	mailer   domain.Mailer
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase. A nil repository disables
// persistence: submissions are accepted and dispatched without being saved.
func NewContactUsecase(repo domain.ContactRepository, mailer domain.Mailer, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		repo:     repo,
		mailer:   mailer,
		validate: validate,
	}
}

// SubmitContact runs the submission pipeline: validate, persist, notify.
// Validation and persistence failures abort; mail failures are logged only
// and never affect the outcome.
func (uc *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest) error {
	normalize(req)

	if err := uc.validate.Struct(req); err != nil {
		return apperror.ValidationFailed(validation.FieldErrors(err))
	}

	state, err := uc.persist(ctx, req)
	if state == domain.SaveFailed {
		logger.Log.Error("Failed to save contact", "error", err, "email", req.Email)
		return apperror.Internal("Failed to save contact to database", err)
	}
	if state == domain.SaveSkipped {
		logger.Log.Info("Persistence disabled - skipping database save", "name", req.Name, "email", req.Email)
	}

	uc.notify(ctx, req)

	return nil
}

// normalize trims every field and canonicalizes the email before validation
func normalize(req *domain.ContactRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Message = strings.TrimSpace(req.Message)
}

// persist attempts the database write and reports a tri-state outcome
func (uc *contactUsecase) persist(ctx context.Context, req *domain.ContactRequest) (domain.SaveState, error) {
	if uc.repo == nil {
		return domain.SaveSkipped, nil
	}

	ctx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()

	stored, err := uc.repo.Save(ctx, req)
	if err != nil {
		return domain.SaveFailed, err
	}

	logger.Log.Info("Contact saved", "id", stored.ID)
	return domain.SaveStored, nil
}

// notify dispatches both emails concurrently and waits for both to settle.
// The two sends are independent: one failing must not stop the other.
func (uc *contactUsecase) notify(ctx context.Context, req *domain.ContactRequest) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := uc.mailer.SendConfirmation(ctx, req.Name, req.Email); err != nil {
			logger.Log.Error("Confirmation email failed", "error", err, "to", req.Email)
		}
	}()

	go func() {
		defer wg.Done()
		if err := uc.mailer.SendNotification(ctx, req.Name, req.Email, req.Message); err != nil {
			logger.Log.Error("Notification email failed", "error", err)
		}
	}()

	wg.Wait()
}

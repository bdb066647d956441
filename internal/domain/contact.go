package domain

import (
	"context"
	"time"
)

// ContactRequest represents a contact form submission.
// Fields are normalized (trimmed, email lower-cased) before validation.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email_dotted"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

// StoredContact is a submission persisted to the contacts table.
// Records are append-only; nothing in the pipeline mutates or deletes them.
type StoredContact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveState is the tri-state outcome of a persistence attempt
type SaveState string

const (
	SaveStored  SaveState = "stored"
	SaveSkipped SaveState = "skipped"
	SaveFailed  SaveState = "failed"
)

// ContactRepository persists validated submissions
type ContactRepository interface {
	Save(ctx context.Context, req *ContactRequest) (*StoredContact, error)
}

// Mailer dispatches the two contact form emails. Implementations must be
// safe for concurrent use across submissions.
type Mailer interface {
	// SendConfirmation acknowledges the submission to the sender
	SendConfirmation(ctx context.Context, name, to string) error
	// SendNotification alerts the site owner, Reply-To set to the sender
	SendNotification(ctx context.Context, name, email, message string) error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact validates, persists and dispatches a contact form submission
	SubmitContact(ctx context.Context, req *ContactRequest) error
}

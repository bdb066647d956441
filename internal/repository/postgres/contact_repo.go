package postgres

import (
	"context"
	"go-portfolio-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type contactRepo struct {
	db *pgxpool.Pool
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

// Save appends a submission to the contacts table. Records are never
// updated or deleted by the pipeline.
func (r *contactRepo) Save(ctx context.Context, req *domain.ContactRequest) (*domain.StoredContact, error) {
	query := `
		INSERT INTO contacts (name, email, message, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	createdAt := time.Now().UTC()

	var id int64
	err := r.db.QueryRow(ctx, query, req.Name, req.Email, req.Message, createdAt).Scan(&id)
	if err != nil {
		return nil, err
	}

	return &domain.StoredContact{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: createdAt,
	}, nil
}

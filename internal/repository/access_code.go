package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/step_challenge_backend/internal/models"
	"github.com/shenikar/step_challenge_backend/internal/service"
	"github.com/shenikar/step_challenge_backend/pkg/postgres"
)

type AccessCodeRepository struct {
	db postgres.Querier
}

func NewAccessCodeRepository(db postgres.Querier) service.AccessCodeRepository {
	return &AccessCodeRepository{db: db}
}

// Create inserts a new unused access code. A duplicate code or purchase id
// is reported as service.ErrAccessCodeExists.
func (r *AccessCodeRepository) Create(ctx context.Context, code *models.AccessCode) error {
	query := `
		INSERT INTO access_codes (code, customer_email, customer_name, product_name, purchase_id, is_used)
		VALUES ($1, $2, $3, $4, $5, false)
		RETURNING id, is_used, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		code.Code,
		code.CustomerEmail,
		code.CustomerName,
		code.ProductName,
		code.PurchaseID,
	).Scan(&code.ID, &code.IsUsed, &code.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return service.ErrAccessCodeExists
		}
		return fmt.Errorf("failed to create access code: %w", err)
	}
	return nil
}

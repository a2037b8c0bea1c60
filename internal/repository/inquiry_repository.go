package repository

import (
	"context"
	"errors"
	"fmt"

	"alloy-catalog/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const inquirySchema = `
	CREATE TABLE IF NOT EXISTS inquiries (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		product_id TEXT NOT NULL DEFAULT '',
		alloy TEXT NOT NULL DEFAULT '',
		quantity TEXT NOT NULL DEFAULT '',
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_inquiries_created_at ON inquiries(created_at DESC);
`

const inquiryColumns = `id, name, company, phone, email, product_id, alloy, quantity, comment, created_at`

// inquiryRepository implements the InquiryRepository interface using PostgreSQL.
type inquiryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewInquiryRepository creates a new PostgreSQL-backed inquiry repository.
func NewInquiryRepository(pool *pgxpool.Pool, logger zerolog.Logger) InquiryRepository {
	return &inquiryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "inquiry").Logger(),
	}
}

// EnsureSchema creates the inquiries table if it does not exist.
func (r *inquiryRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, inquirySchema); err != nil {
		r.logger.Error().Err(err).Msg("failed to create inquiry schema")
		return fmt.Errorf("failed to create inquiry schema: %w", err)
	}
	return nil
}

// Create inserts a new inquiry.
func (r *inquiryRepository) Create(ctx context.Context, inquiry *model.Inquiry) error {
	query := `
		INSERT INTO inquiries (` + inquiryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	req := inquiry.Request
	_, err := r.pool.Exec(ctx, query,
		inquiry.ID,
		req.Name,
		req.Company,
		req.Phone,
		req.Email,
		req.ProductID,
		req.Alloy,
		req.Quantity,
		req.Comment,
		inquiry.CreatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("inquiry_id", inquiry.ID.String()).
			Msg("failed to create inquiry")
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	r.logger.Debug().
		Str("inquiry_id", inquiry.ID.String()).
		Msg("inquiry created successfully")

	return nil
}

// GetByID retrieves an inquiry by its ID.
func (r *inquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id = $1`

	inquiry, err := scanInquiry(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("inquiry_id", id.String()).Msg("inquiry not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("inquiry_id", id.String()).Msg("failed to query inquiry")
		return nil, fmt.Errorf("failed to query inquiry: %w", err)
	}

	return inquiry, nil
}

// ListRecent retrieves the newest inquiries first.
func (r *inquiryRepository) ListRecent(ctx context.Context, limit int) ([]model.Inquiry, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + inquiryColumns + ` FROM inquiries ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Msg("failed to query inquiries")
		return nil, fmt.Errorf("failed to query inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []model.Inquiry{}
	for rows.Next() {
		inquiry, err := scanInquiry(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan inquiry row")
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, *inquiry)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating inquiry rows")
		return nil, fmt.Errorf("error iterating inquiries: %w", err)
	}

	return inquiries, nil
}

func scanInquiry(row pgx.Row) (*model.Inquiry, error) {
	var inquiry model.Inquiry
	req := &inquiry.Request
	err := row.Scan(
		&inquiry.ID,
		&req.Name,
		&req.Company,
		&req.Phone,
		&req.Email,
		&req.ProductID,
		&req.Alloy,
		&req.Quantity,
		&req.Comment,
		&inquiry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

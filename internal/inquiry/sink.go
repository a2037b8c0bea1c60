// Package inquiry records accepted order inquiries. Sinks write to
// PostgreSQL, S3 or a local JSON lines file and can be combined.
package inquiry

import (
	"context"
	"errors"
	"fmt"

	"alloy-catalog/internal/model"
	"alloy-catalog/internal/repository"

	"github.com/rs/zerolog"
)

// Sink records an accepted inquiry.
type Sink interface {
	Store(ctx context.Context, inquiry *model.Inquiry) error
}

// repositorySink implements Sink on top of an InquiryRepository.
type repositorySink struct {
	repo   repository.InquiryRepository
	logger zerolog.Logger
}

// NewRepositorySink creates a sink that inserts inquiries into the database.
func NewRepositorySink(repo repository.InquiryRepository, logger zerolog.Logger) Sink {
	return &repositorySink{
		repo:   repo,
		logger: logger.With().Str("component", "repository-sink").Logger(),
	}
}

func (s *repositorySink) Store(ctx context.Context, inquiry *model.Inquiry) error {
	if inquiry == nil {
		return errors.New("inquiry is nil")
	}
	if err := s.repo.Create(ctx, inquiry); err != nil {
		return fmt.Errorf("failed to store inquiry %s: %w", inquiry.ID, err)
	}
	return nil
}

// teeSink writes to a primary sink and then copies to archive sinks.
type teeSink struct {
	primary  Sink
	archives []Sink
	logger   zerolog.Logger
}

// NewTeeSink creates a sink whose result is the primary sink's result.
// Archive sinks are written after a successful primary store and their
// failures are only logged. Nil archives are skipped.
func NewTeeSink(primary Sink, archives []Sink, logger zerolog.Logger) Sink {
	kept := make([]Sink, 0, len(archives))
	for _, a := range archives {
		if a != nil {
			kept = append(kept, a)
		}
	}
	return &teeSink{
		primary:  primary,
		archives: kept,
		logger:   logger.With().Str("component", "tee-sink").Logger(),
	}
}

func (s *teeSink) Store(ctx context.Context, inquiry *model.Inquiry) error {
	if err := s.primary.Store(ctx, inquiry); err != nil {
		return err
	}

	for i, archive := range s.archives {
		if err := archive.Store(ctx, inquiry); err != nil {
			s.logger.Warn().
				Err(err).
				Int("archive", i).
				Str("inquiry_id", inquiry.ID.String()).
				Msg("failed to archive inquiry")
		}
	}
	return nil
}

package inquiry

import (
	"context"
	"errors"

	"alloy-catalog/internal/model"

	"github.com/rs/zerolog"
)

// fallbackSink tries the primary sink first, then falls back to the secondary.
type fallbackSink struct {
	primary   Sink
	secondary Sink
	logger    zerolog.Logger
}

// NewFallbackSink creates a sink that stores to primary and, when that
// fails, to secondary. A nil primary uses the secondary only.
func NewFallbackSink(primary, secondary Sink, logger zerolog.Logger) Sink {
	return &fallbackSink{
		primary:   primary,
		secondary: secondary,
		logger:    logger.With().Str("component", "fallback-sink").Logger(),
	}
}

func (s *fallbackSink) Store(ctx context.Context, inquiry *model.Inquiry) error {
	if s.primary != nil {
		err := s.primary.Store(ctx, inquiry)
		if err == nil {
			return nil
		}

		s.logger.Warn().
			Err(err).
			Msg("primary sink failed, falling back to secondary")

		if s.secondary == nil {
			return err
		}

		if err2 := s.secondary.Store(ctx, inquiry); err2 != nil {
			return errors.Join(err, err2)
		}
		return nil
	}

	if s.secondary == nil {
		return errors.New("no inquiry sink configured")
	}
	return s.secondary.Store(ctx, inquiry)
}

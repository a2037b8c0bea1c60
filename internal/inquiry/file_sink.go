package inquiry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"alloy-catalog/internal/model"

	"github.com/rs/zerolog"
)

// fileSink implements Sink by appending JSON lines to a local file.
type fileSink struct {
	mu     sync.Mutex
	path   string
	logger zerolog.Logger
}

// NewFileSink creates a sink appending to the file at path. The parent
// directory is created if needed.
func NewFileSink(path string, logger zerolog.Logger) (Sink, error) {
	if path == "" {
		return nil, errors.New("archive path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return &fileSink{
		path:   path,
		logger: logger.With().Str("component", "file-inquiry-sink").Str("path", path).Logger(),
	}, nil
}

func (s *fileSink) Store(ctx context.Context, inquiry *model.Inquiry) error {
	if inquiry == nil {
		return errors.New("inquiry is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	line, err := json.Marshal(inquiry)
	if err != nil {
		return fmt.Errorf("failed to encode inquiry: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to open archive file")
		return fmt.Errorf("failed to open archive file %s: %w", s.path, err)
	}

	if _, err := f.Write(line); err != nil {
		f.Close()
		s.logger.Error().Err(err).Msg("failed to write archive file")
		return fmt.Errorf("failed to write archive file %s: %w", s.path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close archive file %s: %w", s.path, err)
	}

	s.logger.Debug().Str("inquiry_id", inquiry.ID.String()).Msg("inquiry archived to file")
	return nil
}

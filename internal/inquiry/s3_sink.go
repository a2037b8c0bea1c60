package inquiry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"

	"alloy-catalog/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// PutObjectAPI is the subset of the S3 client used by the archive sink.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3Sink implements Sink by writing one JSON object per inquiry to S3.
type s3Sink struct {
	client PutObjectAPI
	bucket string
	prefix string
	logger zerolog.Logger
}

// NewS3Sink creates an S3 archive sink using the default AWS credential chain.
func NewS3Sink(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (Sink, error) {
	logger = logger.With().Str("component", "s3-inquiry-sink").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Str("prefix", prefix).
		Msg("S3 inquiry sink initialised")

	return newS3Sink(s3.NewFromConfig(cfg), bucket, prefix, logger), nil
}

func newS3Sink(client PutObjectAPI, bucket, prefix string, logger zerolog.Logger) *s3Sink {
	return &s3Sink{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Key returns the object key for an inquiry: prefix/YYYY/MM/DD/<id>.json.
func (s *s3Sink) Key(inquiry *model.Inquiry) string {
	day := inquiry.CreatedAt.UTC().Format("2006/01/02")
	return s.prefix + path.Join(day, inquiry.ID.String()+".json")
}

func (s *s3Sink) Store(ctx context.Context, inquiry *model.Inquiry) error {
	if inquiry == nil {
		return errors.New("inquiry is nil")
	}

	body, err := json.Marshal(inquiry)
	if err != nil {
		return fmt.Errorf("failed to encode inquiry: %w", err)
	}

	key := s.Key(inquiry)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to put inquiry to S3")
		return fmt.Errorf("failed to put object to S3 (bucket=%s, key=%s): %w", s.bucket, key, err)
	}

	s.logger.Debug().
		Str("bucket", s.bucket).
		Str("key", key).
		Msg("inquiry archived to S3")

	return nil
}

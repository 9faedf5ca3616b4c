package s3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/orders"
	"github.com/rs/zerolog"
)

// ObjectGetter is the part of the S3 client the source needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Source reads a JSON orders export stored as an S3 object.
type Source struct {
	client ObjectGetter
	bucket string
	key    string
}

func SourceFactory(ctx context.Context, settings config.SourceSettings) (orders.Source, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(settings.S3.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return NewSource(s3.NewFromConfig(cfg), settings.S3.Bucket, settings.S3.Key)
}

func NewSource(client ObjectGetter, bucket, key string) (*Source, error) {
	if client == nil {
		return nil, fmt.Errorf("s3 client is nil")
	}
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("s3 bucket and key are required")
	}
	return &Source{client: client, bucket: bucket, key: key}, nil
}

func (s *Source) Name() string {
	return config.SourceS3
}

func (s *Source) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	logger := zerolog.Ctx(ctx)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer func() {
		if err := out.Body.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close s3 object body")
		}
	}()

	return orders.DecodeOrders(out.Body)
}

func (s *Source) Close() error {
	return nil
}

package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"time"

	appconfig "clinicore/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Store is the boundary to the image storage collaborator. The workflow only
// ever sees object keys and numeric image ids; image bytes never cross this
// interface in the other direction.
type Store interface {
	Put(ctx context.Context, objectKey string, data []byte, contentType string) error
	URLFor(ctx context.Context, objectKey string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, objectKey string) error
}

type s3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	cache   *redis.Client
	log     *logrus.Logger
	bucket  string
}

// NewS3Store builds an S3-backed store. A custom endpoint with path-style
// addressing makes it work against MinIO as well as AWS.
func NewS3Store(ctx context.Context, cfg appconfig.StorageConfig, cache *redis.Client, log *logrus.Logger) (Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	opts := s3.Options{
		Region:       awsCfg.Region,
		Credentials:  awsCfg.Credentials,
		HTTPClient:   awsCfg.HTTPClient,
		UsePathStyle: cfg.UsePathStyle,
	}
	if cfg.Region != "" {
		opts.Region = cfg.Region
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	client := s3.New(opts)

	return &s3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		cache:   cache,
		log:     log,
		bucket:  cfg.Bucket,
	}, nil
}

func (s *s3Store) Put(ctx context.Context, objectKey string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to store object %s: %w", objectKey, err)
	}
	return nil
}

// cacheTTL bounds how long a presigned URL may be served from cache. Caching
// for half the signature lifetime guarantees a cache hit always carries at
// least that much validity.
func cacheTTL(ttl time.Duration) time.Duration {
	half := ttl / 2
	if half < time.Second {
		half = time.Second
	}
	return half
}

// URLFor returns a presigned GET URL. URLs are cached in Redis so repeated
// viewer requests do not re-sign; the cache entry expires well before the
// signature does.
func (s *s3Store) URLFor(ctx context.Context, objectKey string, ttl time.Duration) (string, error) {
	cacheKey := fmt.Sprintf("image_url:%s:%d", objectKey, int(ttl.Seconds()))
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			return cached, nil
		}
	}

	signed, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign object %s: %w", objectKey, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, signed.URL, cacheTTL(ttl)).Err(); err != nil {
			s.log.Warnf("Failed to cache presigned URL for %s: %+v", objectKey, err)
		}
	}

	return signed.URL, nil
}

func (s *s3Store) Delete(ctx context.Context, objectKey string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", objectKey, err)
	}
	return nil
}

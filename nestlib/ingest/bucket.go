package ingest

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// BucketConfig locates a games.json inside an S3-compatible bucket
// (R2, Spaces, S3). Endpoint and Bucket are required; CatalogKey
// defaults to "games.json".
type BucketConfig struct {
	Endpoint   string `toml:"endpoint"`
	Region     string `toml:"region"`
	Bucket     string `toml:"bucket"`
	CatalogKey string `toml:"catalog_key"`
	AccessKey  string `toml:"access_key"`
	SecretKey  string `toml:"secret_key"`
}

// Configured reports whether a bucket source can be built at all.
func (cfg BucketConfig) Configured() bool {
	return cfg.Endpoint != "" && cfg.Bucket != ""
}

// BucketSource fetches the catalog straight from object storage. It
// ranks between the remote HTTP source and the demo fallback: same
// payload as RemoteSource, but authenticated against the bucket that
// also holds the ROMs.
type BucketSource struct {
	client *s3.Client
	bucket string
	key    string
}

func NewBucketSource(ctx context.Context, cfg BucketConfig) (*BucketSource, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("bucket source requires endpoint and bucket")
	}

	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{URL: cfg.Endpoint}, nil
	})

	region := cfg.Region
	if region == "" {
		region = "auto" // R2 convention
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithEndpointResolverWithOptions(resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load bucket config: %w", err)
	}

	key := cfg.CatalogKey
	if key == "" {
		key = "games.json"
	}

	return &BucketSource{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		key:    key,
	}, nil
}

func (s *BucketSource) Name() string { return "bucket" }

func (s *BucketSource) Fetch(ctx context.Context) ([]RawGame, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s from bucket %s: %w", s.key, s.bucket, err)
	}
	defer out.Body.Close()

	var games []RawGame
	if err := json.NewDecoder(out.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.key, err)
	}
	return games, nil
}

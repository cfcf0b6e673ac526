package dataset

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/sales-dashboard-go/internal/domain/repository"
)

const s3Scheme = "s3://"

// s3ObjectGetter é o subconjunto do cliente S3 usado pelo repositório.
type s3ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

func isS3URI(source string) bool {
	return strings.HasPrefix(strings.ToLower(source), s3Scheme)
}

// parseS3URI splits "s3://bucket/path/to/key.xlsx" into bucket and key.
func parseS3URI(uri string) (string, string, error) {
	if !isS3URI(uri) {
		return "", "", fmt.Errorf("not an S3 URI: %s", uri)
	}
	rest := uri[len(s3Scheme):]
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 URI %q, expected s3://bucket/key", uri)
	}
	return bucket, key, nil
}

// loadS3Client monta um cliente S3 a partir da cadeia padrão do SDK. Profile e
// region vazios usam os defaults do ambiente.
func loadS3Client(ctx context.Context, profile, region string) (s3ObjectGetter, error) {
	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}
	return s3.NewFromConfig(cfg), nil
}

// getS3Client carrega a config do SDK uma única vez por profile/region.
func (r *DatasetRepositoryImpl) getS3Client(ctx context.Context, profile, region string) (s3ObjectGetter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cacheKey := profile + "|" + region
	if client, ok := r.s3Clients[cacheKey]; ok {
		return client, nil
	}

	client, err := r.newS3Client(ctx, profile, region)
	if err != nil {
		return nil, err
	}
	r.s3Clients[cacheKey] = client
	return client, nil
}

func (r *DatasetRepositoryImpl) fetchS3Object(ctx context.Context, src repository.DatasetSource) ([]byte, error) {
	uri := src.Location
	bucket, key, err := parseS3URI(uri)
	if err != nil {
		return nil, err
	}

	client, err := r.getS3Client(ctx, src.AWSProfile, src.AWSRegion)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("error downloading %s: %w", uri, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", uri, err)
	}
	return data, nil
}

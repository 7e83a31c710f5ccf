package s3

import (
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"school-portal/internal/config"
)

// LogoResolver turns a stored school logo reference into a URL the client
// can fetch. References that are already URLs pass through untouched.
type LogoResolver interface {
	ResolveLogoURL(key string) (string, error)
}

// Client presigns GET URLs for logo objects in the configured bucket.
type Client struct {
	svc       *s3.S3
	bucket    string
	urlExpiry time.Duration
}

func NewClient(cfg config.LogoConfig) (*Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &Client{
		svc:       s3.New(sess),
		bucket:    cfg.Bucket,
		urlExpiry: cfg.URLExpiry,
	}, nil
}

func (c *Client) ResolveLogoURL(key string) (string, error) {
	if key == "" || isURL(key) {
		return key, nil
	}

	req, _ := c.svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})

	url, err := req.Presign(c.urlExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to presign logo URL: %w", err)
	}

	return url, nil
}

// PassthroughResolver serves logo references as stored. Used when no logo
// bucket is configured.
type PassthroughResolver struct{}

func (PassthroughResolver) ResolveLogoURL(key string) (string, error) {
	return key, nil
}

func isURL(key string) bool {
	return strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://")
}

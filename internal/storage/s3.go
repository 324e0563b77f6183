// Package storage uploads draft photos to S3-compatible object storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Config configures the S3 client
type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}

// Configured reports whether enough settings are present to build a client
func (c Config) Configured() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != "" && c.Bucket != ""
}

// objectAPI is the subset of *s3.Client used here
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Client stores images in a single public bucket.
// It implements listing.ImageStore.
type Client struct {
	s3        objectAPI
	bucket    string
	endpoint  string
	publicURL string
}

// New creates a path-style S3 client. It returns (nil, nil) when storage is not configured,
// letting the service start without uploads.
func New(cfg Config) (*Client, error) {
	if !cfg.Configured() {
		return nil, nil
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}

	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	s3Client := s3.New(s3.Options{
		Region:       cfg.Region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	})

	return newClient(s3Client, cfg.Bucket, endpoint, cfg.PublicURL), nil
}

func newClient(api objectAPI, bucket, endpoint, publicURL string) *Client {
	return &Client{
		s3:        api,
		bucket:    bucket,
		endpoint:  strings.TrimRight(endpoint, "/"),
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// PutImage uploads an object with public-read access and returns its URL
func (c *Client) PutImage(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf(ErrMsgUploadFailed, c.bucket, key, err)
	}
	return c.FileURL(key), nil
}

// DeleteImage removes an object
func (c *Client) DeleteImage(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf(ErrMsgDeleteFailed, c.bucket, key, err)
	}
	return nil
}

// FileURL returns the public URL of key
func (c *Client) FileURL(key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + c.bucket + "/" + key
}

// KeyFromURL extracts the object key from a URL produced by FileURL
func (c *Client) KeyFromURL(rawURL string) (string, bool) {
	if c.publicURL != "" {
		if key, ok := strings.CutPrefix(rawURL, c.publicURL+"/"); ok {
			return key, true
		}
	}
	return strings.CutPrefix(rawURL, c.endpoint+"/"+c.bucket+"/")
}

// Package storage issues presigned S3 URLs for idea media objects.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// PresignExpiry is the lifetime of every issued URL.
const PresignExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}

	timeNow = time.Now
	newID   = uuid.NewString
)

// Config holds the object store coordinates.
type Config struct {
	Region       string
	AccessKey    string
	SecretKey    string
	Bucket       string
	BaseEndpoint string
}

// MediaPresigner hands out short-lived upload and download URLs. Object
// keys are namespaced per owner.
type MediaPresigner struct {
	cfg Config
}

func NewMediaPresigner(cfg Config) *MediaPresigner {
	return &MediaPresigner{cfg: cfg}
}

func ownerPrefix(ownerID string) string {
	return fmt.Sprintf("users/%s/media/", ownerID)
}

// NewMediaKey returns a fresh object key under the owner's prefix.
func NewMediaKey(ownerID string) string {
	d := timeNow().UTC()
	return fmt.Sprintf("%s%04d/%02d/%02d/%s", ownerPrefix(ownerID), d.Year(), d.Month(), d.Day(), newID())
}

// OwnsKey reports whether key lies under ownerID's media prefix.
func (p *MediaPresigner) OwnsKey(ownerID, key string) bool {
	if ownerID == "" || strings.Contains(key, "..") {
		return false
	}
	return strings.HasPrefix(key, ownerPrefix(ownerID))
}

func (p *MediaPresigner) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(p.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			p.cfg.AccessKey,
			p.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(p.cfg.BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// PresignUpload allocates a key for ownerID and returns it with a
// presigned PUT URL.
func (p *MediaPresigner) PresignUpload(ctx context.Context, ownerID, contentType string) (string, string, error) {
	pc, err := p.presignClient(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := p.cfg.Bucket
	key := NewMediaKey(ownerID)
	in := &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	req, err := presignPutObject(pc, ctx, in, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// PresignDownload returns a presigned GET URL for key.
func (p *MediaPresigner) PresignDownload(ctx context.Context, key string) (string, error) {
	pc, err := p.presignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := p.cfg.Bucket
	req, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

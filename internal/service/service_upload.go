// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/lendit/internal/config"
	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/MKhiriev/lendit/internal/utils"
	"github.com/MKhiriev/lendit/internal/validators"
	"github.com/MKhiriev/lendit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// objectPresigner is the part of *s3.PresignClient used for uploads.
type objectPresigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

var imageExtensions = map[string]string{
	validators.ContentTypeJPEG: ".jpg",
	validators.ContentTypePNG:  ".png",
	validators.ContentTypeGIF:  ".gif",
}

var imageKeyPrefixes = map[string]string{
	models.ImagePurposeItem:      "items",
	models.ImagePurposeCollegeID: "college-ids",
}

// uploadService presigns PUT requests so that clients upload images
// straight to the bucket; the server never proxies image bytes.
type uploadService struct {
	presigner     objectPresigner
	bucket        string
	publicBaseURL string
	ttl           time.Duration

	keys      *utils.UUIDGenerator
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

// NewUploadService builds the S3 presigner from cfg. When no bucket is
// configured the returned service answers every request with
// ErrUploadsDisabled.
func NewUploadService(ctx context.Context, cfg config.Images, logger *logger.Logger) (UploadService, error) {
	if !cfg.Enabled() {
		logger.Warn().Msg("image bucket is not configured, uploads are disabled")
		return newUploadService(nil, cfg, logger), nil
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			// S3-compatible hosts such as MinIO
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newUploadService(s3.NewPresignClient(client), cfg, logger), nil
}

func newUploadService(presigner objectPresigner, cfg config.Images, logger *logger.Logger) *uploadService {
	return &uploadService{
		presigner:     presigner,
		bucket:        cfg.Bucket,
		publicBaseURL: publicBaseURL(cfg),
		ttl:           cfg.PresignTTL,
		keys:          utils.NewUUIDGenerator(),
		validator:     validators.NewUploadValidator(),
		now:           time.Now,
		logger:        logger,
	}
}

// PresignImageUpload returns a presigned PUT URL for one image. Keys are
// namespaced by purpose and caller: "items/<user id>/<uuid>.png".
func (s *uploadService) PresignImageUpload(ctx context.Context, identity models.Identity, request models.ImageUploadRequest) (models.ImageUpload, error) {
	log := logger.FromContext(ctx)

	if s.presigner == nil {
		return models.ImageUpload{}, ErrUploadsDisabled
	}
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.ImageUpload{}, err
	}

	prefix := imageKeyPrefixes[request.Purpose] + "/" + strconv.FormatInt(identity.ID, 10)
	key := s.keys.ObjectKey(prefix, imageExtensions[request.ContentType])
	expiresAt := s.now().Add(s.ttl)

	presigned, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(request.ContentType),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		log.Err(err).Str("key", key).Msg("presigning image upload failed")
		return models.ImageUpload{}, fmt.Errorf("%w: %w", ErrPresigningUpload, err)
	}

	method := presigned.Method
	if method == "" {
		method = http.MethodPut
	}

	return models.ImageUpload{
		Key:       key,
		Method:    method,
		UploadURL: presigned.URL,
		PublicURL: s.publicBaseURL + "/" + key,
		ExpiresAt: expiresAt,
	}, nil
}

// publicBaseURL is where uploaded objects are served from: the configured
// base, the custom endpoint in path style, or the AWS virtual-hosted URL.
func publicBaseURL(cfg config.Images) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	case cfg.Endpoint != "":
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}

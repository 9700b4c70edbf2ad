// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/lendit/models"
	validation "github.com/go-ozzo/ozzo-validation"
)

// Field names accepted by [UploadValidator].
const (
	FieldPurpose     = "purpose"
	FieldContentType = "content_type"
)

// Image MIME types the asset host accepts.
const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
	ContentTypeGIF  = "image/gif"
)

// UploadValidator validates image upload requests.
type UploadValidator struct{}

func NewUploadValidator() Validator {
	return &UploadValidator{}
}

func (v *UploadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ImageUploadRequest:
		return v.validateImageUpload(&value, fields...)
	case *models.ImageUploadRequest:
		return v.validateImageUpload(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UploadValidator) validateImageUpload(r *models.ImageUploadRequest, fields ...string) error {
	return validateFields(r, []fieldRule{
		{FieldPurpose, validation.Field(&r.Purpose, validation.Required,
			validation.In(models.ImagePurposeItem, models.ImagePurposeCollegeID))},
		{FieldContentType, validation.Field(&r.ContentType, validation.Required,
			validation.In(ContentTypeJPEG, ContentTypePNG, ContentTypeGIF))},
	}, fields...)
}

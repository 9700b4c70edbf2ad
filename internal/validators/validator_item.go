// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/lendit/models"
	validation "github.com/go-ozzo/ozzo-validation"
)

// Field names accepted by [ItemValidator].
const (
	FieldName         = "name"
	FieldDescription  = "description"
	FieldPricePerHour = "price_per_hour"
	FieldPricePerDay  = "price_per_day"
	FieldCategory     = "category"
	FieldLocation     = "location"
	FieldImages       = "images"
)

// ItemValidator validates item listings.
type ItemValidator struct{}

// NewItemValidator returns the [Validator] for item payloads.
func NewItemValidator() Validator {
	return &ItemValidator{}
}

// Validate dispatches on the payload type. Supported types, by value or
// pointer: models.ItemCreate, models.ItemUpdate.
func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ItemCreate:
		return v.validateCreate(&value, fields...)
	case *models.ItemCreate:
		return v.validateCreate(value, fields...)

	case models.ItemUpdate:
		return v.validateUpdate(&value, fields...)
	case *models.ItemUpdate:
		return v.validateUpdate(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateCreate(c *models.ItemCreate, fields ...string) error {
	return validateFields(c, []fieldRule{
		{FieldName, validation.Field(&c.Name, validation.Required, validation.Length(1, maxItemNameLength))},
		{FieldDescription, validation.Field(&c.Description, validation.Length(0, maxDescriptionLength))},
		{FieldPricePerHour, validation.Field(&c.PricePerHour, positive)},
		{FieldPricePerDay, validation.Field(&c.PricePerDay, positive)},
		{FieldCategory, validation.Field(&c.Category, validation.Length(0, maxCategoryLength))},
		{FieldLocation, validation.Field(&c.Location, validation.Required, validation.Length(1, maxLocationLength))},
		{FieldImages, validation.Field(&c.Images, imageList)},
	}, fields...)
}

// validateUpdate checks a partial update. A supplied name or location may
// not be blank.
func (v *ItemValidator) validateUpdate(u *models.ItemUpdate, fields ...string) error {
	return validateFields(u, []fieldRule{
		{FieldName, validation.Field(&u.Name, validation.NilOrNotEmpty, validation.Length(1, maxItemNameLength))},
		{FieldDescription, validation.Field(&u.Description, validation.Length(0, maxDescriptionLength))},
		{FieldPricePerHour, validation.Field(&u.PricePerHour, positive)},
		{FieldPricePerDay, validation.Field(&u.PricePerDay, positive)},
		{FieldCategory, validation.Field(&u.Category, validation.Length(0, maxCategoryLength))},
		{FieldLocation, validation.Field(&u.Location, validation.NilOrNotEmpty, validation.Length(1, maxLocationLength))},
		{FieldImages, validation.Field(&u.Images, imageList)},
	}, fields...)
}

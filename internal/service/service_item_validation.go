// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lendit/internal/validators"
	"github.com/MKhiriev/lendit/models"
)

// ItemValidationService validates item payloads before handing them to the
// wrapped ItemService.
type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService() ItemServiceWrapper {
	return &ItemValidationService{
		validator: validators.NewItemValidator(),
	}
}

func (v *ItemValidationService) CreateItem(ctx context.Context, identity models.Identity, input models.ItemCreate) (models.Item, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Item{}, fmt.Errorf("error during item validation before saving: %w", err)
	}
	return v.inner.CreateItem(ctx, identity, input)
}

func (v *ItemValidationService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	return v.inner.GetItem(ctx, id)
}

func (v *ItemValidationService) ListItems(ctx context.Context) ([]models.Item, error) {
	return v.inner.ListItems(ctx)
}

func (v *ItemValidationService) UpdateItem(ctx context.Context, identity models.Identity, id int64, update models.ItemUpdate) (models.Item, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Item{}, fmt.Errorf("error during item validation before update: %w", err)
	}
	return v.inner.UpdateItem(ctx, identity, id, update)
}

func (v *ItemValidationService) DeleteItem(ctx context.Context, identity models.Identity, id int64) error {
	return v.inner.DeleteItem(ctx, identity, id)
}

func (v *ItemValidationService) Wrap(inner ItemService) ItemService {
	v.inner = inner
	return v
}

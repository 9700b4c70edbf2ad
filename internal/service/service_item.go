// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/MKhiriev/lendit/internal/store"
	"github.com/MKhiriev/lendit/models"
)

// itemService persists items. Ownership of existing items is checked by the
// repository inside the mutating transaction via ownedBy.
type itemService struct {
	itemRepository store.ItemRepository

	logger *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// CreateItem stores a new item owned by the caller.
func (s *itemService) CreateItem(ctx context.Context, identity models.Identity, input models.ItemCreate) (models.Item, error) {
	item, err := s.itemRepository.CreateItem(ctx, input.ToItem(identity.ID))
	if err != nil {
		return models.Item{}, fmt.Errorf("error creating item: %w", err)
	}
	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	item, err := s.itemRepository.GetItem(ctx, id)
	if err != nil {
		return models.Item{}, fmt.Errorf("error getting item %d: %w", id, err)
	}
	return item, nil
}

func (s *itemService) ListItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.itemRepository.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}
	return items, nil
}

// UpdateItem applies update if the caller owns the item. A missing item is
// reported before ownership.
func (s *itemService) UpdateItem(ctx context.Context, identity models.Identity, id int64, update models.ItemUpdate) (models.Item, error) {
	item, err := s.itemRepository.UpdateItem(ctx, id, update, ownedBy(identity))
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("caller_id", identity.ID).Int64("item_id", id).Msg("item update rejected")
		return models.Item{}, fmt.Errorf("error updating item %d: %w", id, err)
	}
	return item, nil
}

// DeleteItem removes the item if the caller owns it.
func (s *itemService) DeleteItem(ctx context.Context, identity models.Identity, id int64) error {
	if err := s.itemRepository.DeleteItem(ctx, id, ownedBy(identity)); err != nil {
		logger.FromContext(ctx).Err(err).Int64("caller_id", identity.ID).Int64("item_id", id).Msg("item deletion rejected")
		return fmt.Errorf("error deleting item %d: %w", id, err)
	}
	return nil
}

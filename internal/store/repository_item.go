// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/MKhiriev/lendit/models"
	"github.com/jackc/pgerrcode"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
//
// Mutations of an existing item lock its row with SELECT ... FOR UPDATE and
// consult the caller-supplied [OwnershipCheck] inside the same transaction,
// so the owner cannot change between the check and the write.
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateItem inserts item and returns the stored row. A missing owner yields
// [ErrOwnerNotFound].
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	images, err := encodeImages(item.Images)
	if err != nil {
		return models.Item{}, err
	}

	query, args, err := buildInsertItemQuery(map[string]any{
		"owner_id":       item.OwnerID,
		"name":           item.Name,
		"description":    item.Description,
		"price_per_hour": item.PricePerHour,
		"price_per_day":  item.PricePerDay,
		"category":       item.Category,
		"location":       item.Location,
		"is_available":   item.IsAvailable,
		"images":         images,
	})
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("failed to build query")
		return models.Item{}, err
	}

	created, err := scanItem(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Int64("owner_id", item.OwnerID).Msg("error inserting item")
		switch {
		case errors.Is(err, ErrEncodingImages):
			return models.Item{}, err
		case postgresError(err) == pgerrcode.ForeignKeyViolation:
			return models.Item{}, ErrOwnerNotFound
		default:
			return models.Item{}, r.unexpected(err)
		}
	}

	return created, nil
}

// GetItem returns the item with the given id or [ErrItemNotFound].
func (r *itemRepository) GetItem(ctx context.Context, id int64) (models.Item, error) {
	return r.getItem(ctx, r.DB, id)
}

// ListItems returns every item ordered by id.
func (r *itemRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, listItems)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error selecting items")
		return nil, r.unexpected(err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error scanning item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error iterating item rows")
		return nil, r.unexpected(err)
	}

	return items, nil
}

// UpdateItem applies update to the item after check accepted its owner.
//
// Order of failures: [ErrItemNotFound] first, then whatever check returns,
// then write errors. Nothing is written unless check returns nil.
func (r *itemRepository) UpdateItem(ctx context.Context, id int64, update models.ItemUpdate, check OwnershipCheck) (models.Item, error) {
	log := logger.FromContext(ctx)

	fields := update.Fields()
	if images, ok := fields["images"].([]string); ok {
		encoded, err := encodeImages(images)
		if err != nil {
			return models.Item{}, err
		}
		fields["images"] = encoded
	}

	var updated models.Item
	err := r.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		if err := r.checkOwner(ctx, tx, id, check); err != nil {
			return err
		}

		if len(fields) == 0 {
			item, err := r.getItem(ctx, tx, id)
			updated = item
			return err
		}

		query, args, err := buildUpdateQuery(models.Item{}.TableName(), id, fields, itemColumnList)
		if err != nil {
			return err
		}

		item, err := scanItem(tx.QueryRowContext(ctx, query, args...))
		if err != nil {
			if errors.Is(err, ErrEncodingImages) {
				return err
			}
			return r.unexpected(err)
		}
		updated = item
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Int64("item_id", id).Msg("item was not updated")
		return models.Item{}, err
	}

	return updated, nil
}

// DeleteItem removes the item after check accepted its owner. Failure order
// is the same as for UpdateItem.
func (r *itemRepository) DeleteItem(ctx context.Context, id int64, check OwnershipCheck) error {
	log := logger.FromContext(ctx)

	err := r.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		if err := r.checkOwner(ctx, tx, id, check); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, deleteItem, id)
		if err != nil {
			return r.unexpected(err)
		}
		if affected, err := result.RowsAffected(); err == nil && affected == 0 {
			return ErrItemNotFound
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Int64("item_id", id).Msg("item was not deleted")
		return err
	}

	return nil
}

// checkOwner locks the item row and runs check against its owner.
func (r *itemRepository) checkOwner(ctx context.Context, tx DBTX, id int64, check OwnershipCheck) error {
	var ownerID int64
	err := tx.QueryRowContext(ctx, lockItemOwner, id).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrItemNotFound
	}
	if err != nil {
		return r.unexpected(err)
	}

	if check == nil {
		return nil
	}
	return check(ownerID)
}

func (r *itemRepository) getItem(ctx context.Context, q DBTX, id int64) (models.Item, error) {
	item, err := scanItem(q.QueryRowContext(ctx, getItem, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.getItem").Int64("item_id", id).Msg("error selecting item")
		if errors.Is(err, ErrEncodingImages) {
			return models.Item{}, err
		}
		return models.Item{}, r.unexpected(err)
	}
	return item, nil
}

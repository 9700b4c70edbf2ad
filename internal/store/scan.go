// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/lendit/models"
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.PhoneNumber,
		&u.CollegeIDURL, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func scanItem(row rowScanner) (models.Item, error) {
	var (
		item   models.Item
		images []byte
	)
	err := row.Scan(
		&item.ID, &item.OwnerID, &item.Name, &item.Description, &item.PricePerHour, &item.PricePerDay,
		&item.Category, &item.Location, &item.IsAvailable, &images, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return models.Item{}, err
	}

	item.Images, err = decodeImages(images)
	if err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// encodeImages renders the JSONB value stored in items.images. A nil list is
// stored as an empty array.
func encodeImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}
	data, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingImages, err)
	}
	return data, nil
}

func decodeImages(data []byte) ([]string, error) {
	images := []string{}
	if len(data) == 0 {
		return images, nil
	}
	if err := json.Unmarshal(data, &images); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingImages, err)
	}
	if images == nil {
		images = []string{}
	}
	return images, nil
}

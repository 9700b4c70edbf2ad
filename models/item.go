// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Item is a rentable listing. OwnerID references the user who created it;
// only that user may update or delete the item.
type Item struct {
	ID      int64 `json:"id"`
	OwnerID int64 `json:"owner_id"`

	Name         string   `json:"name"`
	Description  *string  `json:"description,omitempty"`
	PricePerHour *float64 `json:"price_per_hour,omitempty"`
	PricePerDay  *float64 `json:"price_per_day,omitempty"`
	Category     *string  `json:"category,omitempty"`

	// Location is the pickup location, e.g. "Hostel A, Room 101".
	Location string `json:"location"`

	IsAvailable bool `json:"is_available"`

	// Images lists image URLs on the asset host.
	Images []string `json:"images"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemCreate is the body of POST /v1/items/. The owner is never taken from
// the body: it is the authenticated caller.
type ItemCreate struct {
	Name         string   `json:"name"`
	Description  *string  `json:"description,omitempty"`
	PricePerHour *float64 `json:"price_per_hour,omitempty"`
	PricePerDay  *float64 `json:"price_per_day,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Location     string   `json:"location"`

	// IsAvailable defaults to true when omitted.
	IsAvailable *bool    `json:"is_available,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// ToItem builds the item to persist for ownerID.
func (c ItemCreate) ToItem(ownerID int64) Item {
	item := Item{
		OwnerID:      ownerID,
		Name:         c.Name,
		Description:  c.Description,
		PricePerHour: c.PricePerHour,
		PricePerDay:  c.PricePerDay,
		Category:     c.Category,
		Location:     c.Location,
		IsAvailable:  true,
		Images:       c.Images,
	}
	if c.IsAvailable != nil {
		item.IsAvailable = *c.IsAvailable
	}
	if item.Images == nil {
		item.Images = []string{}
	}
	return item
}

// ItemUpdate is a partial update of an item. Only non-nil fields are
// written; the owner can never be changed through it.
type ItemUpdate struct {
	Name         *string   `json:"name,omitempty"`
	Description  *string   `json:"description,omitempty"`
	PricePerHour *float64  `json:"price_per_hour,omitempty"`
	PricePerDay  *float64  `json:"price_per_day,omitempty"`
	Category     *string   `json:"category,omitempty"`
	Location     *string   `json:"location,omitempty"`
	IsAvailable  *bool     `json:"is_available,omitempty"`
	Images       *[]string `json:"images,omitempty"`
}

// IsEmpty reports whether no field was supplied.
func (u ItemUpdate) IsEmpty() bool {
	return len(u.Fields()) == 0
}

// Fields maps column names to the values supplied in the update. Images
// are kept as []string; the store encodes them for its column type.
func (u ItemUpdate) Fields() map[string]any {
	fields := make(map[string]any, 8)
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.PricePerHour != nil {
		fields["price_per_hour"] = *u.PricePerHour
	}
	if u.PricePerDay != nil {
		fields["price_per_day"] = *u.PricePerDay
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Location != nil {
		fields["location"] = *u.Location
	}
	if u.IsAvailable != nil {
		fields["is_available"] = *u.IsAvailable
	}
	if u.Images != nil {
		fields["images"] = *u.Images
	}
	return fields
}

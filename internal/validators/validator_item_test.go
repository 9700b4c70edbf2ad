// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/lendit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItem() models.ItemCreate {
	return models.ItemCreate{
		Name:         "Electric Kettle",
		Description:  ptr("1.5L, works fine"),
		PricePerHour: ptr(1.5),
		PricePerDay:  ptr(5.0),
		Category:     ptr("Electronics"),
		Location:     "Hostel A, Room 101",
		Images:       []string{"https://cdn.example.com/kettle.jpg"},
	}
}

func TestItemValidator_Create(t *testing.T) {
	v := NewItemValidator()
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(c *models.ItemCreate)
		wantField string
	}{
		{name: "valid", mutate: func(*models.ItemCreate) {}},
		{name: "only required fields", mutate: func(c *models.ItemCreate) {
			c.Description, c.PricePerHour, c.PricePerDay, c.Category, c.Images = nil, nil, nil, nil, nil
		}},
		{name: "missing name", mutate: func(c *models.ItemCreate) { c.Name = "" }, wantField: "name"},
		{name: "long name", mutate: func(c *models.ItemCreate) { c.Name = strings.Repeat("n", 101) }, wantField: "name"},
		{name: "long description", mutate: func(c *models.ItemCreate) { c.Description = ptr(strings.Repeat("d", 501)) }, wantField: "description"},
		{name: "zero hourly price", mutate: func(c *models.ItemCreate) { c.PricePerHour = ptr(0.0) }, wantField: "price_per_hour"},
		{name: "negative daily price", mutate: func(c *models.ItemCreate) { c.PricePerDay = ptr(-3.0) }, wantField: "price_per_day"},
		{name: "long category", mutate: func(c *models.ItemCreate) { c.Category = ptr(strings.Repeat("c", 51)) }, wantField: "category"},
		{name: "missing location", mutate: func(c *models.ItemCreate) { c.Location = "" }, wantField: "location"},
		{name: "long location", mutate: func(c *models.ItemCreate) { c.Location = strings.Repeat("l", 101) }, wantField: "location"},
		{name: "blank image", mutate: func(c *models.ItemCreate) { c.Images = []string{"a.jpg", " "} }, wantField: "images"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validItem()
			tt.mutate(&c)

			err := v.Validate(ctx, &c)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, Detail(err), tt.wantField+":")
		})
	}
}

func TestItemValidator_Update(t *testing.T) {
	v := NewItemValidator()
	ctx := context.Background()

	tests := []struct {
		name      string
		update    models.ItemUpdate
		wantField string
	}{
		{name: "empty update", update: models.ItemUpdate{}},
		{name: "availability only", update: models.ItemUpdate{IsAvailable: ptr(false)}},
		{name: "clear images", update: models.ItemUpdate{Images: &[]string{}}},
		{name: "blank name", update: models.ItemUpdate{Name: ptr("")}, wantField: "name"},
		{name: "blank location", update: models.ItemUpdate{Location: ptr("")}, wantField: "location"},
		{name: "zero price", update: models.ItemUpdate{PricePerDay: ptr(0.0)}, wantField: "price_per_day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.update)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, Detail(err), tt.wantField+":")
		})
	}
}

func TestItemValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewItemValidator().Validate(context.Background(), "kettle"), ErrUnsupportedType)
}

func TestUploadValidator(t *testing.T) {
	v := NewUploadValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ImageUploadRequest{Purpose: models.ImagePurposeItem, ContentType: ContentTypePNG}))
	assert.NoError(t, v.Validate(ctx, &models.ImageUploadRequest{Purpose: models.ImagePurposeCollegeID, ContentType: ContentTypeJPEG}))

	err := v.Validate(ctx, models.ImageUploadRequest{Purpose: "avatar", ContentType: "application/pdf"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, Detail(err), "purpose:")
	assert.Contains(t, Detail(err), "content_type:")

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}

func TestDetail(t *testing.T) {
	assert.Equal(t, "plain", Detail(errors.New("plain")))
}

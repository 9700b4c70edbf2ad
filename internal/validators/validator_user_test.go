// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/lendit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func validUser() models.User {
	return models.User{
		Email:       "alice@example.com",
		Password:    "correct horse",
		FirstName:   ptr("Alice"),
		LastName:    ptr("Liddell"),
		PhoneNumber: ptr("+14155552671"),
		Role:        models.RoleLender,
	}
}

func TestUserValidator_Registration(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(u *models.User)
		wantField string
	}{
		{name: "valid", mutate: func(*models.User) {}},
		{name: "empty role is allowed", mutate: func(u *models.User) { u.Role = "" }},
		{name: "phone without plus", mutate: func(u *models.User) { u.PhoneNumber = ptr("4155552671") }},
		{name: "no optional fields", mutate: func(u *models.User) {
			u.FirstName, u.LastName, u.PhoneNumber = nil, nil, nil
		}},
		{name: "missing email", mutate: func(u *models.User) { u.Email = "" }, wantField: "email"},
		{name: "malformed email", mutate: func(u *models.User) { u.Email = "alice.example.com" }, wantField: "email"},
		{name: "short password", mutate: func(u *models.User) { u.Password = "1234567" }, wantField: "password"},
		{name: "password over bcrypt limit", mutate: func(u *models.User) { u.Password = strings.Repeat("p", 73) }, wantField: "password"},
		{name: "long first name", mutate: func(u *models.User) { u.FirstName = ptr(strings.Repeat("a", 51)) }, wantField: "first_name"},
		{name: "long last name", mutate: func(u *models.User) { u.LastName = ptr(strings.Repeat("b", 51)) }, wantField: "last_name"},
		{name: "phone with letters", mutate: func(u *models.User) { u.PhoneNumber = ptr("+1-415-CALL") }, wantField: "phone_number"},
		{name: "phone starting with zero", mutate: func(u *models.User) { u.PhoneNumber = ptr("0123456") }, wantField: "phone_number"},
		{name: "phone too long", mutate: func(u *models.User) { u.PhoneNumber = ptr("+1234567890123456") }, wantField: "phone_number"},
		{name: "unknown role", mutate: func(u *models.User) { u.Role = "superuser" }, wantField: "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)

			err := v.Validate(ctx, u)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, Detail(err), tt.wantField+":")
		})
	}
}

func TestUserValidator_ReportsAllFields(t *testing.T) {
	err := NewUserValidator().Validate(context.Background(), &models.User{Email: "bad", Password: "short"})
	require.ErrorIs(t, err, ErrInvalidInput)

	detail := Detail(err)
	assert.Contains(t, detail, "email: must be a valid email address")
	assert.Contains(t, detail, "password: the length must be between 8 and 72")
}

func TestUserValidator_FieldScoping(t *testing.T) {
	v := NewUserValidator()
	u := models.User{Email: "alice@example.com"}

	assert.NoError(t, v.Validate(context.Background(), u, FieldEmail))
	assert.ErrorIs(t, v.Validate(context.Background(), u, FieldEmail, FieldPassword), ErrInvalidInput)
	assert.ErrorIs(t, v.Validate(context.Background(), u, "nickname"), ErrUnknownField)
}

func TestUserValidator_Update(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name      string
		update    models.UserUpdate
		wantField string
	}{
		{name: "empty update", update: models.UserUpdate{}},
		{name: "names only", update: models.UserUpdate{FirstName: ptr("Jane"), LastName: ptr("")}},
		{name: "new password", update: models.UserUpdate{Password: ptr("another secret")}},
		{name: "deactivate", update: models.UserUpdate{IsActive: ptr(false)}},
		{name: "blank email", update: models.UserUpdate{Email: ptr("")}, wantField: "email"},
		{name: "malformed email", update: models.UserUpdate{Email: ptr("jane@")}, wantField: "email"},
		{name: "blank password", update: models.UserUpdate{Password: ptr("")}, wantField: "password"},
		{name: "short password", update: models.UserUpdate{Password: ptr("abc")}, wantField: "password"},
		{name: "bad phone", update: models.UserUpdate{PhoneNumber: ptr("call me")}, wantField: "phone_number"},
		{name: "college id not an image", update: models.UserUpdate{CollegeIDURL: ptr("https://cdn.example.com/id.pdf")}, wantField: "college_id_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, &tt.update)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, Detail(err), tt.wantField+":")
		})
	}
}

func TestUserValidator_CollegeID(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	valid := []string{
		"https://cdn.example.com/ids/alice.jpg",
		"https://cdn.example.com/ids/alice.JPEG",
		"http://cdn.example.com/alice.png?version=2",
		"https://cdn.example.com/alice.gif",
	}
	for _, u := range valid {
		assert.NoError(t, v.Validate(ctx, models.CollegeIDInput{CollegeIDURL: u}), u)
	}

	invalid := map[string]string{
		"":                                "cannot be blank",
		"https://cdn.example.com/id.pdf":  "URL must point to an image",
		"https://cdn.example.com/id":      "URL must point to an image",
		"ftp://cdn.example.com/alice.jpg": "must be a valid http or https URL",
		"/relative/alice.jpg":             "must be a valid http or https URL",
	}
	for u, msg := range invalid {
		err := v.Validate(ctx, models.CollegeIDInput{CollegeIDURL: u})
		require.ErrorIs(t, err, ErrInvalidInput, u)
		assert.Contains(t, Detail(err), msg, u)
	}
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	err := NewUserValidator().Validate(context.Background(), models.Item{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

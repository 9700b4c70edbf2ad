// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/lendit/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Field names accepted by [UserValidator].
const (
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldPhoneNumber  = "phone_number"
	FieldRole         = "role"
	FieldCollegeIDURL = "college_id_url"
)

// UserValidator validates registration payloads, profile updates and
// college ID submissions.
type UserValidator struct{}

// NewUserValidator returns the [Validator] for user payloads.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the payload type. Supported types, by value or
// pointer: models.User, models.UserUpdate, models.CollegeIDInput.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateRegistration(&value, fields...)
	case *models.User:
		return v.validateRegistration(value, fields...)

	case models.UserUpdate:
		return v.validateUpdate(&value, fields...)
	case *models.UserUpdate:
		return v.validateUpdate(value, fields...)

	case models.CollegeIDInput:
		return v.validateCollegeID(&value, fields...)
	case *models.CollegeIDInput:
		return v.validateCollegeID(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegistration checks a new account. Role may be empty: the
// service defaults it to renter.
func (v *UserValidator) validateRegistration(u *models.User, fields ...string) error {
	return validateFields(u, []fieldRule{
		{FieldEmail, validation.Field(&u.Email, validation.Required, validation.Length(3, maxEmailLength), is.Email)},
		{FieldPassword, validation.Field(&u.Password, validation.Required, validation.Length(minPasswordLength, maxPasswordLength))},
		{FieldFirstName, validation.Field(&u.FirstName, validation.Length(0, maxNameLength))},
		{FieldLastName, validation.Field(&u.LastName, validation.Length(0, maxNameLength))},
		{FieldPhoneNumber, validation.Field(&u.PhoneNumber, validation.Length(0, maxPhoneLength), phoneNumber)},
		{FieldRole, validation.Field(&u.Role, validation.In(models.RoleRenter, models.RoleLender, models.RoleAdmin))},
		{FieldCollegeIDURL, validation.Field(&u.CollegeIDURL, imageURL)},
	}, fields...)
}

// validateUpdate checks a partial profile update. Absent fields are
// skipped; supplied email and password may not be blank.
func (v *UserValidator) validateUpdate(u *models.UserUpdate, fields ...string) error {
	return validateFields(u, []fieldRule{
		{FieldEmail, validation.Field(&u.Email, validation.NilOrNotEmpty, validation.Length(3, maxEmailLength), is.Email)},
		{FieldPassword, validation.Field(&u.Password, validation.NilOrNotEmpty, validation.Length(minPasswordLength, maxPasswordLength))},
		{FieldFirstName, validation.Field(&u.FirstName, validation.Length(0, maxNameLength))},
		{FieldLastName, validation.Field(&u.LastName, validation.Length(0, maxNameLength))},
		{FieldPhoneNumber, validation.Field(&u.PhoneNumber, validation.Length(0, maxPhoneLength), phoneNumber)},
		{FieldCollegeIDURL, validation.Field(&u.CollegeIDURL, imageURL)},
	}, fields...)
}

func (v *UserValidator) validateCollegeID(in *models.CollegeIDInput, fields ...string) error {
	return validateFields(in, []fieldRule{
		{FieldCollegeIDURL, validation.Field(&in.CollegeIDURL, validation.Required, imageURL)},
	}, fields...)
}

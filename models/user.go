// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Roles a user can register with. The role is stored and returned but is not
// consulted by ownership checks.
const (
	RoleRenter = "renter"
	RoleLender = "lender"
	RoleAdmin  = "admin"
)

// User represents a Lendit account. The same type carries the registration
// payload (with a plaintext Password) and the persisted record (with a
// bcrypt hash in Password).
type User struct {
	// ID is the unique, server-assigned user identifier.
	ID int64 `json:"id"`

	// Email is the login identifier. Lookups are case-sensitive.
	Email string `json:"email"`

	// Password holds the plaintext on registration and the bcrypt hash once
	// persisted. It is accepted from JSON but never rendered back: see
	// [User.Public].
	Password string `json:"password,omitempty"`

	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`

	// CollegeIDURL points to the image of the user's college ID on the
	// asset host.
	CollegeIDURL *string `json:"college_id_url,omitempty"`

	// Role is one of RoleRenter, RoleLender or RoleAdmin.
	Role string `json:"role"`

	// IsActive is false for deactivated accounts, which cannot log in.
	IsActive bool `json:"is_active"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u that is safe to serialise: the password hash
// is cleared.
func (u User) Public() User {
	u.Password = ""
	return u
}

// UserUpdate is a partial update of the caller's own profile. Only non-nil
// fields are written.
type UserUpdate struct {
	Email        *string `json:"email,omitempty"`
	Password     *string `json:"password,omitempty"`
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	CollegeIDURL *string `json:"college_id_url,omitempty"`

	// IsActive=false deactivates the account. Tokens issued before stay
	// valid until they expire.
	IsActive *bool `json:"is_active,omitempty"`
}

// IsEmpty reports whether no field was supplied.
func (u UserUpdate) IsEmpty() bool {
	return len(u.Fields()) == 0
}

// Fields maps column names to the values supplied in the update.
func (u UserUpdate) Fields() map[string]any {
	fields := make(map[string]any, 7)
	if u.Email != nil {
		fields["email"] = *u.Email
	}
	if u.Password != nil {
		fields["password"] = *u.Password
	}
	if u.FirstName != nil {
		fields["first_name"] = *u.FirstName
	}
	if u.LastName != nil {
		fields["last_name"] = *u.LastName
	}
	if u.PhoneNumber != nil {
		fields["phone_number"] = *u.PhoneNumber
	}
	if u.CollegeIDURL != nil {
		fields["college_id_url"] = *u.CollegeIDURL
	}
	if u.IsActive != nil {
		fields["is_active"] = *u.IsActive
	}
	return fields
}

// CollegeIDInput is the body of POST /v1/users/{id}/college-id.
type CollegeIDInput struct {
	CollegeIDURL string `json:"college_id_url"`
}

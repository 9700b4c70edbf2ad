// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/lendit/internal/store"
	"github.com/MKhiriev/lendit/models"
)

// AuthorizeMutation allows a mutation iff the caller owns the resource.
// Roles are not consulted.
func AuthorizeMutation(identity models.Identity, ownerID int64) error {
	if identity.ID != ownerID {
		return ErrForbidden
	}
	return nil
}

// ownedBy adapts AuthorizeMutation to the store's in-transaction check.
func ownedBy(identity models.Identity) store.OwnershipCheck {
	return func(ownerID int64) error {
		return AuthorizeMutation(identity, ownerID)
	}
}

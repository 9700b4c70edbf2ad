// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"path"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers for uploaded objects.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4 if the clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// ObjectKey builds an object key of the form "<prefix>/<uuid><ext>".
func (g *UUIDGenerator) ObjectKey(prefix, ext string) string {
	return path.Join(prefix, g.Generate()+ext)
}

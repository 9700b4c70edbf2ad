// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/MKhiriev/lendit/internal/store"
	"github.com/MKhiriev/lendit/internal/utils"
	"github.com/MKhiriev/lendit/internal/validators"
	"github.com/MKhiriev/lendit/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	hasher         *utils.PasswordHasher

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher *utils.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		hasher:         hasher,
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user %d: %w", id, err)
	}
	return user.Public(), nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	for i := range users {
		users[i] = users[i].Public()
	}
	return users, nil
}

// UpdateUser applies update to the caller's own profile. A new password is
// hashed before it is stored.
func (s *userService) UpdateUser(ctx context.Context, identity models.Identity, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Err(err).Int64("user_id", identity.ID).Msg("invalid profile update")
		return models.User{}, err
	}

	if update.Password != nil {
		hash, err := s.hasher.Hash(*update.Password)
		if err != nil {
			log.Err(err).Int64("user_id", identity.ID).Msg("password hashing failed")
			return models.User{}, err
		}
		update.Password = &hash
	}

	user, err := s.userRepository.UpdateUser(ctx, identity.ID, update)
	if err != nil {
		log.Err(err).Int64("user_id", identity.ID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("error updating user %d: %w", identity.ID, err)
	}

	return user.Public(), nil
}

// SetCollegeID stores the college ID image URL of userID. The user must
// exist and be the caller.
func (s *userService) SetCollegeID(ctx context.Context, identity models.Identity, userID int64, input models.CollegeIDInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		return models.User{}, fmt.Errorf("error getting user %d: %w", userID, err)
	}
	if err := AuthorizeMutation(identity, userID); err != nil {
		log.Warn().Int64("caller_id", identity.ID).Int64("user_id", userID).Msg("college ID change for another user rejected")
		return models.User{}, err
	}

	if err := s.validator.Validate(ctx, input); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("invalid college ID")
		return models.User{}, err
	}

	user, err := s.userRepository.UpdateUser(ctx, userID, models.UserUpdate{CollegeIDURL: &input.CollegeIDURL})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("college ID update failed")
		return models.User{}, fmt.Errorf("error updating user %d: %w", userID, err)
	}

	return user.Public(), nil
}

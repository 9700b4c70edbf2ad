// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/lendit/internal/config"
	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/MKhiriev/lendit/internal/store"
	"github.com/MKhiriev/lendit/internal/utils"
	"github.com/MKhiriev/lendit/internal/validators"
	"github.com/MKhiriev/lendit/models"
)

// authService is the concrete implementation of AuthService.
//
// Authenticate trusts a verified token until it expires: it does not
// re-read the account, so a deactivated user keeps access for at most one
// token lifetime.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	hasher *utils.PasswordHasher
	codec  *utils.TokenCodec

	// dummyHash is compared against when the email is unknown so that a
	// failed lookup costs about as much as a wrong password.
	dummyHash string

	logger *logger.Logger
}

// NewAuthService builds an AuthService. It fails when cfg carries no token
// sign key.
func NewAuthService(userRepository store.UserRepository, hasher *utils.PasswordHasher, cfg config.Auth, logger *logger.Logger) (AuthService, error) {
	codec, err := utils.NewTokenCodec(cfg.TokenSignKey, cfg.TokenIssuer, cfg.TokenDuration)
	if err != nil {
		return nil, fmt.Errorf("error creating token codec: %w", err)
	}

	dummyHash, err := hasher.Hash(utils.NewUUIDGenerator().Generate())
	if err != nil {
		return nil, fmt.Errorf("error preparing password hasher: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		hasher:         hasher,
		codec:          codec,
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// RegisterUser validates user, hashes its password and persists it. An
// empty role defaults to renter. The returned user carries no password.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Role == "" {
		user.Role = models.RoleRenter
	}
	if err := a.validator.Validate(ctx, user); err != nil {
		log.Err(err).Str("email", user.Email).Msg("invalid registration data")
		return models.User{}, err
	}

	hash, err := a.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("password hashing failed")
		return models.User{}, err
	}
	user.Password = hash
	user.IsActive = true

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Public(), nil
}

// Login checks the credentials and issues an access token.
//
// The email must match an active account exactly (case-sensitive). Unknown
// email, inactive account and wrong password are logged differently but all
// return ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, email, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Info().Msg("login attempt with empty credentials")
		return models.Token{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindActiveUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		a.hasher.Verify(password, a.dummyHash)
		log.Info().Str("email", email).Msg("login failed: no active user with this email")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(password, foundUser.Password) {
		log.Info().Int64("user_id", foundUser.ID).Msg("login failed: wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.CreateToken(ctx, foundUser)
}

// CreateToken issues a token for user with the configured lifetime.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := a.codec.Issue(user.ID, user.Email, 0)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate verifies tokenString and returns the identity it carries.
// The specific rejection reason is logged, never returned.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Identity, error) {
	token, err := a.codec.Verify(tokenString)
	if err != nil {
		logger.FromContext(ctx).Info().Str("reason", err.Error()).Msg("token rejected")
		return models.Identity{}, ErrInvalidToken
	}

	return token.Identity(), nil
}

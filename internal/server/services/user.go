// Package services contains server-side business logic. This file implements
// UserService, which handles registration and credential authentication.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/acquisitions/internal/common"
	"github.com/dmitrijs2005/acquisitions/internal/dbx"
	"github.com/dmitrijs2005/acquisitions/internal/server/auth"
	"github.com/dmitrijs2005/acquisitions/internal/server/models"
	"github.com/dmitrijs2005/acquisitions/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users with hashed credentials
// - Authenticate: verify email/password pairs
//
// Both return PublicUser: the password hash never crosses the service
// boundary. Every failure path propagates a distinguishable error; nothing
// is swallowed.
type UserService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	hasher      *auth.PasswordHasher
}

// NewUserService constructs a UserService bound to a database handle.
func NewUserService(db dbx.DBTX, m repomanager.RepositoryManager, hasher *auth.PasswordHasher) *UserService {
	return &UserService{db: db, repomanager: m, hasher: hasher}
}

// Register creates a new user. The pre-insert lookup gives a friendly
// duplicate answer, but check-then-insert is not atomic: the unique index is
// the final authority, and an insert-time violation surfaces as the same
// common.ErrEmailExists.
func (s *UserService) Register(ctx context.Context, name, email, password, role string) (*models.PublicUser, error) {
	repo := s.repomanager.Users(s.db)

	_, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrEmailExists
	}
	if !errors.Is(err, common.ErrUserNotFound) {
		return nil, fmt.Errorf("error checking existing user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailExists) {
			return nil, common.ErrEmailExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user.Public(), nil
}

// Authenticate verifies the email/password pair and returns the matching
// user. Missing users yield common.ErrUserNotFound, bad passwords
// common.ErrInvalidCredentials; the HTTP boundary maps both to the same
// generic response so callers cannot probe which part failed.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.PublicUser, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	return user.Public(), nil
}

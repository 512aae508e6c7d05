// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login with JWT issuance, and
// account management.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/noteshare/internal/common"
	"github.com/dmitrijs2005/noteshare/internal/server/auth"
	"github.com/dmitrijs2005/noteshare/internal/server/config"
	"github.com/dmitrijs2005/noteshare/internal/server/models"
	"github.com/dmitrijs2005/noteshare/internal/server/repositories/repomanager"
)

// UserService provides account-related operations:
// - Register: hash the password and create the user
// - Login: verify credentials and mint a token
// - Get/List/Update/Delete: account management
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register hashes the password and creates the account. Uniqueness conflicts
// surface unchanged so the transport layer can name the taken field.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, username, email, digest)
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) || errors.Is(err, common.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials against the stored digest and, on success,
// returns the account together with a freshly minted token. A missing
// account and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Get returns the account by id; common.ErrorNotFound on a miss.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.FindByID(ctx, id)
}

// List returns every account, newest first.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.FindAll(ctx)
}

// Update applies the supplied fields; a new password is hashed before it
// reaches the store. An empty update reports common.ErrorNotFound, same as
// a missing account.
func (s *UserService) Update(ctx context.Context, id int64, update *models.UserUpdate) (*models.User, error) {
	patch := &models.UserPatch{
		Username: update.Username,
		Email:    update.Email,
	}
	if update.Password != nil {
		digest, err := auth.HashPassword(*update.Password)
		if err != nil {
			return nil, common.ErrorInternal
		}
		patch.PasswordHash = &digest
	}

	repo := s.repomanager.Users(s.db)
	return repo.Update(ctx, id, patch)
}

// Delete removes the account; owned notes cascade at the schema level.
func (s *UserService) Delete(ctx context.Context, id int64) (bool, error) {
	repo := s.repomanager.Users(s.db)
	return repo.Delete(ctx, id)
}

// Package services contains server-side business logic. This file implements
// AuthService, which handles registration, login, and issuing/rotating the
// single live token pair kept per user.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/realtyhub/internal/common"
	"github.com/dmitrijs2005/realtyhub/internal/dbx"
	"github.com/dmitrijs2005/realtyhub/internal/server/auth"
	"github.com/dmitrijs2005/realtyhub/internal/server/config"
	"github.com/dmitrijs2005/realtyhub/internal/server/models"
	"github.com/dmitrijs2005/realtyhub/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService provides authentication-related operations:
// - Register: create users and mint their first token pair
// - Login: verify credentials and mint tokens
// - Refresh: rotate the stored pair and mint a new one
// - Me: load the authenticated user's profile
type AuthService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories and server
// config. The signing secret is injected here and never read ambiently.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user with a bcrypt password hash and returns the
// user together with its first token pair. A duplicate email yields
// common.ErrorAlreadyExists.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (*models.User, *TokenPair, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Roles:        []string{"user"},
	}

	repo := s.repomanager.Users(s.db)
	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, nil, common.ErrorAlreadyExists
		}
		return nil, nil, fmt.Errorf("creating user: %w", err)
	}

	pair, err := s.issueTokenPair(ctx, user, s.db)
	if err != nil {
		return nil, nil, err
	}

	user.PasswordHash = ""
	return user, pair, nil
}

// Login verifies the provided credentials and, on success, returns the user
// (password hash stripped) with a new token pair. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorInvalidCredentials
		}
		return nil, nil, fmt.Errorf("looking up user: %w", err)
	}

	// Federated accounts have no local password.
	if user.Federated || user.PasswordHash == "" {
		return nil, nil, common.ErrorInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, common.ErrorInvalidCredentials
	}

	pair, err := s.issueTokenPair(ctx, user, s.db)
	if err != nil {
		return nil, nil, err
	}

	user.PasswordHash = ""
	return user, pair, nil
}

// Refresh validates a client-presented token pair against the store and
// rotates it atomically. The presented tokens are not signature-checked: the
// store match is the sole authority, so unknown, stale and tampered pairs all
// fail with common.ErrorInvalidSession. The conditional delete makes refresh
// tokens single-use even under concurrent calls.
func (s *AuthService) Refresh(ctx context.Context, accessToken, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.Tokens(s.db)

	stored, err := repo.FindByPair(ctx, accessToken, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidSession
		}
		return nil, fmt.Errorf("looking up token pair: %w", err)
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidSession
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Tokens(tx)

		matched, err := repoTx.DeleteMatchingPair(ctx, stored.UserID, accessToken, refreshToken)
		if err != nil {
			return fmt.Errorf("rotating token pair: %w", err)
		}
		// Lost the race to a concurrent refresh: the pair is already rotated.
		if !matched {
			return common.ErrorInvalidSession
		}

		var genErr error
		pair, genErr = s.issueTokenPair(ctx, user, tx)
		return genErr
	}); err != nil {
		return nil, err
	}

	return pair, nil
}

// Me returns the profile of the user identified by the access token's subject.
func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}

// --- helpers below ---

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	return auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *AuthService) generateRefreshToken() string {
	return uuid.NewString()
}

// issueTokenPair mints a new pair and persists it, overwriting any existing
// pair for the user. The overwrite is what invalidates the previous pair.
func (s *AuthService) issueTokenPair(ctx context.Context, user *models.User, tx dbx.DBTX) (*TokenPair, error) {
	access, err := s.generateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}
	refresh := s.generateRefreshToken()

	tokensRepo := s.repomanager.Tokens(tx)
	if err := tokensRepo.Save(ctx, user.ID, access, refresh); err != nil {
		return nil, fmt.Errorf("saving token pair: %w", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

package services

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/realtyhub/internal/server/models"
	"github.com/dmitrijs2005/realtyhub/internal/server/repositories/repomanager"
)

// UserService exposes admin CRUD over user accounts. Password hashes never
// leave this layer.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

func stripHash(user *models.User) *models.User {
	user.PasswordHash = ""
	return user
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return stripHash(user), nil
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	list, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range list {
		stripHash(user)
	}
	return list, nil
}

// Update overwrites profile fields; a non-empty password is re-hashed, an
// empty one keeps the stored hash.
func (s *UserService) Update(ctx context.Context, user *models.User, password string) error {
	repo := s.repomanager.Users(s.db)

	current, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		return err
	}

	user.PasswordHash = current.PasswordHash
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	return repo.Update(ctx, user)
}

// Delete removes a user; the token pair and user-property links go with it
// (ON DELETE CASCADE).
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Users(s.db).Delete(ctx, id)
}

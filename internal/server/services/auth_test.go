package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/realtyhub/internal/common"
	"github.com/dmitrijs2005/realtyhub/internal/dbx"
	"github.com/dmitrijs2005/realtyhub/internal/server/auth"
	"github.com/dmitrijs2005/realtyhub/internal/server/config"
	"github.com/dmitrijs2005/realtyhub/internal/server/models"
	buildingsrepo "github.com/dmitrijs2005/realtyhub/internal/server/repositories/buildings"
	companiesrepo "github.com/dmitrijs2005/realtyhub/internal/server/repositories/companies"
	propertiesrepo "github.com/dmitrijs2005/realtyhub/internal/server/repositories/properties"
	tokensrepo "github.com/dmitrijs2005/realtyhub/internal/server/repositories/tokens"
	userpropsrepo "github.com/dmitrijs2005/realtyhub/internal/server/repositories/userproperties"
	usersrepo "github.com/dmitrijs2005/realtyhub/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func newAuthService(t *testing.T, db *sql.DB, rm *fakeRepoManager) *AuthService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
	}
	return NewAuthService(db, rm, cfg)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = "u-new"
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) List(context.Context) ([]*models.User, error) { return nil, nil }
func (f *fakeUsersRepo) Update(context.Context, *models.User) error   { return nil }
func (f *fakeUsersRepo) Delete(context.Context, string) error         { return nil }

type fakeTokensRepo struct {
	saved []models.TokenPair

	findOut *models.TokenPair
	findErr error

	deleteMatched bool
	deleteErr     error

	saveErr error
}

func (f *fakeTokensRepo) Save(ctx context.Context, userID, accessToken, refreshToken string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, models.TokenPair{UserID: userID, AccessToken: accessToken, RefreshToken: refreshToken})
	return nil
}

func (f *fakeTokensRepo) FindByPair(ctx context.Context, accessToken, refreshToken string) (*models.TokenPair, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeTokensRepo) DeleteMatchingPair(ctx context.Context, userID, accessToken, refreshToken string) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	return f.deleteMatched, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	t *fakeTokensRepo
	p propertiesrepo.Repository
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Tokens(db dbx.DBTX) tokensrepo.Repository     { return m.t }

func (m *fakeRepoManager) Companies(db dbx.DBTX) companiesrepo.Repository { return nil }
func (m *fakeRepoManager) Buildings(db dbx.DBTX) buildingsrepo.Repository { return nil }
func (m *fakeRepoManager) Properties(db dbx.DBTX) propertiesrepo.Repository {
	return m.p
}
func (m *fakeRepoManager) UserProperties(db dbx.DBTX) userpropsrepo.Repository { return nil }

// --- login ---

func TestLogin_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{byEmailOut: &models.User{
			ID:           "u1",
			Email:        "a@b.com",
			PasswordHash: mustHash(t, "secret1"),
		}},
		t: &fakeTokensRepo{},
	}
	s := newAuthService(t, db, rm)

	user, pair, err := s.Login(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.PasswordHash != "" {
		t.Error("password hash not stripped")
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("empty tokens: %+v", pair)
	}

	// access token must verify and carry the user's identity
	claims, err := auth.ParseToken(pair.AccessToken, []byte("k"))
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "a@b.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	// the pair must be persisted against the user
	if len(rm.t.saved) != 1 || rm.t.saved[0].UserID != "u1" {
		t.Fatalf("pair not saved: %+v", rm.t.saved)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{byEmailOut: &models.User{
			ID:           "u1",
			Email:        "a@b.com",
			PasswordHash: mustHash(t, "secret1"),
		}},
		t: &fakeTokensRepo{},
	}
	s := newAuthService(t, db, rm)

	_, _, err := s.Login(context.Background(), "a@b.com", "wrong")
	if !errors.Is(err, common.ErrorInvalidCredentials) {
		t.Fatalf("want ErrorInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{byEmailErr: common.ErrorNotFound},
		t: &fakeTokensRepo{},
	}
	s := newAuthService(t, db, rm)

	_, _, err := s.Login(context.Background(), "nobody@b.com", "x")
	if !errors.Is(err, common.ErrorInvalidCredentials) {
		t.Fatalf("want ErrorInvalidCredentials, got %v", err)
	}
}

func TestLogin_RepoFailureKeepsCause(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	cause := errors.New("pg: connection refused to host db-7")
	rm := &fakeRepoManager{
		u: &fakeUsersRepo{byEmailErr: cause},
		t: &fakeTokensRepo{},
	}
	s := newAuthService(t, db, rm)

	_, _, err := s.Login(context.Background(), "a@b.com", "x")
	if !errors.Is(err, cause) {
		t.Fatalf("underlying cause lost: %v", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("error message does not carry the cause: %v", err)
	}
}

func TestRefresh_SaveFailureKeepsCause(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	cause := errors.New("pg: write conflict")
	rm := &fakeRepoManager{
		u: &fakeUsersRepo{byIDOut: &models.User{ID: "u1", Email: "a@b.com"}},
		t: &fakeTokensRepo{
			findOut:       &models.TokenPair{UserID: "u1", AccessToken: "a", RefreshToken: "r"},
			deleteMatched: true,
			saveErr:       cause,
		},
	}
	s := newAuthService(t, db, rm)

	_, err := s.Refresh(context.Background(), "a", "r")
	if !errors.Is(err, cause) {
		t.Fatalf("underlying cause lost: %v", err)
	}
}

func TestLogin_FederatedAccountRejectsPassword(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{byEmailOut: &models.User{ID: "u1", Email: "a@b.com", Federated: true}},
		t: &fakeTokensRepo{},
	}
	s := newAuthService(t, db, rm)

	_, _, err := s.Login(context.Background(), "a@b.com", "anything")
	if !errors.Is(err, common.ErrorInvalidCredentials) {
		t.Fatalf("want ErrorInvalidCredentials, got %v", err)
	}
}

// --- register ---

func TestRegister_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: &fakeUsersRepo{}, t: &fakeTokensRepo{}}
	s := newAuthService(t, db, rm)

	user, pair, err := s.Register(context.Background(), "a@b.com", "secret1", "Alice")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.ID == "" || pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("incomplete result: %+v %+v", user, pair)
	}
	if user.PasswordHash != "" {
		t.Error("password hash not stripped")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{createErr: common.ErrorAlreadyExists},
		t: &fakeTokensRepo{},
	}
	s := newAuthService(t, db, rm)

	_, _, err := s.Register(context.Background(), "a@b.com", "secret1", "Alice")
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

// --- refresh ---

func TestRefresh_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{byIDOut: &models.User{ID: "u1", Email: "a@b.com"}},
		t: &fakeTokensRepo{
			findOut:       &models.TokenPair{UserID: "u1", AccessToken: "old-a", RefreshToken: "old-r"},
			deleteMatched: true,
		},
	}
	s := newAuthService(t, db, rm)

	pair, err := s.Refresh(context.Background(), "old-a", "old-r")
	if err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("empty tokens: %+v", pair)
	}
	if pair.AccessToken == "old-a" || pair.RefreshToken == "old-r" {
		t.Fatalf("pair not rotated: %+v", pair)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRefresh_UnknownPair(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{},
		t: &fakeTokensRepo{findErr: common.ErrorNotFound},
	}
	s := newAuthService(t, db, rm)

	_, err := s.Refresh(context.Background(), "stale-a", "stale-r")
	if !errors.Is(err, common.ErrorInvalidSession) {
		t.Fatalf("want ErrorInvalidSession, got %v", err)
	}
}

func TestRefresh_LostRace(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	// FindByPair succeeded, but a concurrent refresh rotated the pair before
	// our conditional delete ran.
	rm := &fakeRepoManager{
		u: &fakeUsersRepo{byIDOut: &models.User{ID: "u1", Email: "a@b.com"}},
		t: &fakeTokensRepo{
			findOut:       &models.TokenPair{UserID: "u1", AccessToken: "a", RefreshToken: "r"},
			deleteMatched: false,
		},
	}
	s := newAuthService(t, db, rm)

	_, err := s.Refresh(context.Background(), "a", "r")
	if !errors.Is(err, common.ErrorInvalidSession) {
		t.Fatalf("want ErrorInvalidSession, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRefresh_DeletedUser(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{byIDErr: common.ErrorNotFound},
		t: &fakeTokensRepo{findOut: &models.TokenPair{UserID: "gone", AccessToken: "a", RefreshToken: "r"}},
	}
	s := newAuthService(t, db, rm)

	_, err := s.Refresh(context.Background(), "a", "r")
	if !errors.Is(err, common.ErrorInvalidSession) {
		t.Fatalf("want ErrorInvalidSession, got %v", err)
	}
}

// --- me ---

func TestMe_StripsHash(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{byIDOut: &models.User{ID: "u1", Email: "a@b.com", PasswordHash: "hash"}},
		t: &fakeTokensRepo{},
	}
	s := newAuthService(t, db, rm)

	user, err := s.Me(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Me error: %v", err)
	}
	if user.PasswordHash != "" {
		t.Error("password hash not stripped")
	}
}

func TestMe_NotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{byIDErr: common.ErrorNotFound},
		t: &fakeTokensRepo{},
	}
	s := newAuthService(t, db, rm)

	_, err := s.Me(context.Background(), "gone")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

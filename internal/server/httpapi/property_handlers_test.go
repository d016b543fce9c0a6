package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/realtyhub/internal/common"
	"github.com/dmitrijs2005/realtyhub/internal/server/auth"
	"github.com/dmitrijs2005/realtyhub/internal/server/models"
)

type fakePropertyService struct {
	lastFilter models.PropertyFilter
	property   *models.Property
	list       []*models.Property
	err        error
}

func (f *fakePropertyService) Create(ctx context.Context, property *models.Property) (*models.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	property.ID = "p1"
	return property, nil
}

func (f *fakePropertyService) Get(ctx context.Context, id string) (*models.Property, error) {
	return f.property, f.err
}

func (f *fakePropertyService) List(ctx context.Context, filter models.PropertyFilter) ([]*models.Property, error) {
	f.lastFilter = filter
	return f.list, f.err
}

func (f *fakePropertyService) Update(ctx context.Context, property *models.Property) error {
	return f.err
}

func (f *fakePropertyService) Delete(ctx context.Context, id string) error {
	return f.err
}

type fakeUserPropertyService struct {
	lastUserID     string
	lastPropertyID string
	lastRelation   string
	err            error
}

func (f *fakeUserPropertyService) Link(ctx context.Context, userID, propertyID, relation string) (*models.UserProperty, error) {
	f.lastUserID, f.lastPropertyID, f.lastRelation = userID, propertyID, relation
	if f.err != nil {
		return nil, f.err
	}
	return &models.UserProperty{UserID: userID, PropertyID: propertyID, Relation: relation}, nil
}

func (f *fakeUserPropertyService) ListByUser(ctx context.Context, userID string) ([]*models.UserProperty, error) {
	f.lastUserID = userID
	return nil, f.err
}

func (f *fakeUserPropertyService) Unlink(ctx context.Context, userID, propertyID string) error {
	f.lastUserID, f.lastPropertyID = userID, propertyID
	return f.err
}

func bearerToken(t *testing.T, secret, userID string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, userID+"@example.com", []byte(secret), time.Minute)
	require.NoError(t, err)
	return token
}

func TestListProperties_ParsesFilters(t *testing.T) {
	cfg := testConfig()
	fake := &fakePropertyService{list: []*models.Property{}}
	srv := NewServer(cfg, nopLogger{}, Services{Properties: fake})

	req := httptest.NewRequest(http.MethodGet,
		"/api/properties?buildingId=b1&city=Riga&minPrice=100000&maxPrice=250000&rooms=3&status=available", nil)
	req.Header.Set("Authorization", "Bearer "+bearerToken(t, cfg.SecretKey, "u1"))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.PropertyFilter{
		BuildingID: "b1",
		City:       "Riga",
		MinPrice:   100000,
		MaxPrice:   250000,
		Rooms:      3,
		Status:     "available",
	}, fake.lastFilter)
}

func TestListProperties_PublicRead(t *testing.T) {
	srv := NewServer(testConfig(), nopLogger{}, Services{Properties: &fakePropertyService{list: []*models.Property{}}})

	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateProperty_Unauthenticated(t *testing.T) {
	srv := NewServer(testConfig(), nopLogger{}, Services{Properties: &fakePropertyService{}})

	req := httptest.NewRequest(http.MethodPost, "/api/properties",
		strings.NewReader(`{"buildingId":"b1","title":"flat"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProperty_Created(t *testing.T) {
	cfg := testConfig()
	srv := NewServer(cfg, nopLogger{}, Services{Properties: &fakePropertyService{}})

	req := httptest.NewRequest(http.MethodPost, "/api/properties",
		strings.NewReader(`{"buildingId":"b1","title":"2-room flat","price":150000,"rooms":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearerToken(t, cfg.SecretKey, "u1"))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"p1"`)
}

func TestCreateProperty_InvalidStatus(t *testing.T) {
	cfg := testConfig()
	srv := NewServer(cfg, nopLogger{}, Services{Properties: &fakePropertyService{err: common.ErrorValidation}})

	req := httptest.NewRequest(http.MethodPost, "/api/properties",
		strings.NewReader(`{"buildingId":"b1","title":"flat","status":"demolished"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearerToken(t, cfg.SecretKey, "u1"))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProperty_NotFound(t *testing.T) {
	cfg := testConfig()
	srv := NewServer(cfg, nopLogger{}, Services{Properties: &fakePropertyService{err: common.ErrorNotFound}})

	req := httptest.NewRequest(http.MethodGet, "/api/properties/missing", nil)
	req.Header.Set("Authorization", "Bearer "+bearerToken(t, cfg.SecretKey, "u1"))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLinkUserProperty_ScopedToAuthenticatedUser(t *testing.T) {
	cfg := testConfig()
	fake := &fakeUserPropertyService{}
	srv := NewServer(cfg, nopLogger{}, Services{UserProperties: fake})

	req := httptest.NewRequest(http.MethodPost, "/api/user-properties",
		strings.NewReader(`{"propertyId":"p1","relation":"favorite"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearerToken(t, cfg.SecretKey, "u42"))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "u42", fake.lastUserID)
	assert.Equal(t, "p1", fake.lastPropertyID)
	assert.Equal(t, "favorite", fake.lastRelation)
}

func TestUnlinkUserProperty(t *testing.T) {
	cfg := testConfig()
	fake := &fakeUserPropertyService{}
	srv := NewServer(cfg, nopLogger{}, Services{UserProperties: fake})

	req := httptest.NewRequest(http.MethodDelete, "/api/user-properties/p7", nil)
	req.Header.Set("Authorization", "Bearer "+bearerToken(t, cfg.SecretKey, "u42"))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "u42", fake.lastUserID)
	assert.Equal(t, "p7", fake.lastPropertyID)
}

package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrijs2005/realtyhub/internal/logging"
	"github.com/dmitrijs2005/realtyhub/internal/server/models"
)

type warnRecorder struct {
	warns []string
}

func (r *warnRecorder) Info(ctx context.Context, msg string, args ...any) {}
func (r *warnRecorder) Warn(ctx context.Context, msg string, args ...any) {
	r.warns = append(r.warns, msg)
}
func (r *warnRecorder) Error(ctx context.Context, msg string, args ...any) {}
func (r *warnRecorder) With(args ...any) logging.Logger { return r }

type fakePropertiesRepo struct {
	list []*models.Property
}

func (f *fakePropertiesRepo) Create(ctx context.Context, p *models.Property) (*models.Property, error) {
	return p, nil
}

func (f *fakePropertiesRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	return f.list[0], nil
}

func (f *fakePropertiesRepo) List(ctx context.Context, filter models.PropertyFilter) ([]*models.Property, error) {
	return f.list, nil
}

func (f *fakePropertiesRepo) Update(context.Context, *models.Property) error { return nil }
func (f *fakePropertiesRepo) Delete(context.Context, string) error           { return nil }

func TestPropertyList_PresignFailureDegradesAndLogs(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()
	stubPresignSeams(t)

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("s3 unreachable")
	}

	logger := &warnRecorder{}
	rm := &fakeRepoManager{p: &fakePropertiesRepo{list: []*models.Property{
		{ID: "p1", Status: models.PropertyStatusAvailable, ImageKeys: []string{"k1"}, Model3DKey: "m1"},
	}}}
	svc := NewPropertyService(db, rm, newMediaSvc(), logger)

	list, err := svc.List(context.Background(), models.PropertyFilter{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 1 || list[0].ImageURLs != nil || list[0].Model3DURL != "" {
		t.Fatalf("expected degraded response without URLs, got %+v", list[0])
	}
	if len(logger.warns) != 2 {
		t.Fatalf("expected image and model presign failures logged, got %v", logger.warns)
	}
	for _, msg := range logger.warns {
		if !strings.Contains(msg, "presigning") {
			t.Errorf("unexpected log line: %q", msg)
		}
	}
}

func TestPropertyGet_DecoratesURLs(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()
	stubPresignSeams(t)

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "http://signed/" + *in.Key}, nil
	}

	rm := &fakeRepoManager{p: &fakePropertiesRepo{list: []*models.Property{
		{ID: "p1", Status: models.PropertyStatusAvailable, ImageKeys: []string{"k1"}, Model3DKey: "m1"},
	}}}
	svc := NewPropertyService(db, rm, newMediaSvc(), &warnRecorder{})

	got, err := svc.Get(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if len(got.ImageURLs) != 1 || got.ImageURLs[0] != "http://signed/k1" {
		t.Fatalf("image urls not decorated: %+v", got.ImageURLs)
	}
	if got.Model3DURL != "http://signed/m1" {
		t.Fatalf("model url not decorated: %q", got.Model3DURL)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/lendit/internal/config"
	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/MKhiriev/lendit/internal/service"
	"github.com/MKhiriev/lendit/models"
)

// ---- Mock: AuthService ----

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, email, password string) (models.Token, error)
	authenticateFn func(ctx context.Context, token string) (models.Identity, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.Token, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	return models.Token{UserID: user.ID, Email: user.Email, SignedString: "token"}, nil
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (models.Identity, error) {
	return m.authenticateFn(ctx, token)
}

// ---- Mock: UserService ----

type mockUserService struct {
	getUserFn      func(ctx context.Context, id int64) (models.User, error)
	listUsersFn    func(ctx context.Context) ([]models.User, error)
	updateUserFn   func(ctx context.Context, identity models.Identity, update models.UserUpdate) (models.User, error)
	setCollegeIDFn func(ctx context.Context, identity models.Identity, userID int64, input models.CollegeIDInput) (models.User, error)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return m.getUserFn(ctx, id)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) UpdateUser(ctx context.Context, identity models.Identity, update models.UserUpdate) (models.User, error) {
	return m.updateUserFn(ctx, identity, update)
}

func (m *mockUserService) SetCollegeID(ctx context.Context, identity models.Identity, userID int64, input models.CollegeIDInput) (models.User, error) {
	return m.setCollegeIDFn(ctx, identity, userID, input)
}

// ---- Mock: ItemService ----

type mockItemService struct {
	createItemFn func(ctx context.Context, identity models.Identity, input models.ItemCreate) (models.Item, error)
	getItemFn    func(ctx context.Context, id int64) (models.Item, error)
	listItemsFn  func(ctx context.Context) ([]models.Item, error)
	updateItemFn func(ctx context.Context, identity models.Identity, id int64, update models.ItemUpdate) (models.Item, error)
	deleteItemFn func(ctx context.Context, identity models.Identity, id int64) error
}

func (m *mockItemService) CreateItem(ctx context.Context, identity models.Identity, input models.ItemCreate) (models.Item, error) {
	return m.createItemFn(ctx, identity, input)
}

func (m *mockItemService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	return m.getItemFn(ctx, id)
}

func (m *mockItemService) ListItems(ctx context.Context) ([]models.Item, error) {
	return m.listItemsFn(ctx)
}

func (m *mockItemService) UpdateItem(ctx context.Context, identity models.Identity, id int64, update models.ItemUpdate) (models.Item, error) {
	return m.updateItemFn(ctx, identity, id, update)
}

func (m *mockItemService) DeleteItem(ctx context.Context, identity models.Identity, id int64) error {
	return m.deleteItemFn(ctx, identity, id)
}

// ---- Mock: UploadService ----

type mockUploadService struct {
	presignFn func(ctx context.Context, identity models.Identity, request models.ImageUploadRequest) (models.ImageUpload, error)
}

func (m *mockUploadService) PresignImageUpload(ctx context.Context, identity models.Identity, request models.ImageUploadRequest) (models.ImageUpload, error) {
	return m.presignFn(ctx, identity, request)
}

// ---- Mock: HealthService ----

type mockHealthService struct {
	checkFn func(ctx context.Context) error
}

func (m *mockHealthService) Check(ctx context.Context) error {
	return m.checkFn(ctx)
}

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ---- Helpers ----

const (
	testToken    = "valid-token"
	testCallerID = int64(7)
)

var testIdentity = models.Identity{ID: testCallerID, Email: "owner@example.com"}

// acceptTestToken is an AuthService whose Authenticate accepts only
// testToken, as testIdentity.
func acceptTestToken() *mockAuthService {
	return &mockAuthService{
		authenticateFn: func(_ context.Context, token string) (models.Identity, error) {
			if token != testToken {
				return models.Identity{}, service.ErrInvalidToken
			}
			return testIdentity, nil
		},
	}
}

// newTestHandler builds a Handler over services with a nop logger. A nil
// AuthService is replaced by acceptTestToken.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()

	if services.AuthService == nil {
		services.AuthService = acceptTestToken()
	}
	return NewHandler(services, config.Server{}, logger.Nop())
}

// serve routes req through the full router.
func serve(t *testing.T, h *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func ptr[T any](v T) *T {
	return &v
}

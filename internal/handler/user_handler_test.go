package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chopnow/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResponse), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResponse), args.Error(1)
}

func (m *MockUserService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, req *model.UpdateProfileRequest) (*model.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func newUserHandlerFixture() (*MockUserService, *UserHandler) {
	userSvc := new(MockUserService)
	h := NewUserHandler(userSvc, zerolog.Nop())
	return userSvc, h
}

func TestUserHandler_Signup(t *testing.T) {
	userSvc, h := newUserHandlerFixture()

	userSvc.On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).Return(&model.AuthResponse{
		Token: "token-123",
		User:  model.User{UID: "u1", Email: "ada@example.com"},
	}, nil)

	body, _ := json.Marshal(model.RegisterRequest{
		FullName: "Ada Obi",
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Signup(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp model.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "token-123", resp.Token)
	assert.Equal(t, "u1", resp.User.UID)
}

func TestUserHandler_Signup_EmailTaken(t *testing.T) {
	userSvc, h := newUserHandlerFixture()

	userSvc.On("Register", mock.Anything, mock.Anything).Return(nil, model.ErrEmailTaken)

	body, _ := json.Marshal(model.RegisterRequest{
		FullName: "Ada Obi",
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Signup(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), model.ErrCodeEmailTaken)
}

func TestUserHandler_Signup_InvalidJSON(t *testing.T) {
	_, h := newUserHandlerFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), model.ErrCodeInvalidJSON)
}

func TestUserHandler_Login(t *testing.T) {
	userSvc, h := newUserHandlerFixture()

	userSvc.On("Login", mock.Anything, mock.AnythingOfType("*model.LoginRequest")).Return(&model.AuthResponse{
		Token: "token-123",
		User:  model.User{UID: "u1"},
	}, nil)

	body, _ := json.Marshal(model.LoginRequest{Email: "ada@example.com", Password: "hunter22"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	userSvc, h := newUserHandlerFixture()

	userSvc.On("Login", mock.Anything, mock.Anything).Return(nil, model.ErrInvalidCredentials)

	body, _ := json.Marshal(model.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), model.ErrCodeInvalidCredentials)
}

func TestUserHandler_Profile_Get(t *testing.T) {
	userSvc, h := newUserHandlerFixture()

	userSvc.On("GetProfile", mock.Anything, "u1").Return(&model.User{
		UID:      "u1",
		FullName: "Ada Obi",
	}, nil)

	req := authenticatedRequest(http.MethodGet, "/api/profile", nil, "u1")
	rec := httptest.NewRecorder()
	h.Profile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var profile model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Ada Obi", profile.FullName)
}

func TestUserHandler_Profile_Update(t *testing.T) {
	userSvc, h := newUserHandlerFixture()

	userSvc.On("UpdateProfile", mock.Anything, "u1", mock.AnythingOfType("*model.UpdateProfileRequest")).
		Return(&model.User{UID: "u1", HomeAddress: "12 Allen Avenue, Ikeja"}, nil)

	body, _ := json.Marshal(model.UpdateProfileRequest{HomeAddress: "12 Allen Avenue, Ikeja"})
	req := authenticatedRequest(http.MethodPut, "/api/profile", body, "u1")
	rec := httptest.NewRecorder()
	h.Profile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var profile model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "12 Allen Avenue, Ikeja", profile.HomeAddress)
}

func TestUserHandler_Profile_NotAuthenticated(t *testing.T) {
	_, h := newUserHandlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	rec := httptest.NewRecorder()
	h.Profile(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

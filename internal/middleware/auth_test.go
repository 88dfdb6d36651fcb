package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/middleware"
	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/model"
	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/service"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, u *model.User) (*model.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// denialBody asserts the response is the generic 401 denial that never
// reveals which part of the credentials was wrong.
func denialBody(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, map[string]string{"message": "Access Denied"}, body)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mockUsers := new(MockUserService)
	authMw := middleware.AuthMiddleware(mockUsers, zerolog.Nop())

	nextCalled := false
	h := authMw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users", nil))

	denialBody(t, rr)
	assert.False(t, nextCalled)
	mockUsers.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_UnknownUser(t *testing.T) {
	mockUsers := new(MockUserService)
	mockUsers.On("GetByEmail", mock.Anything, "nobody@example.com").
		Return(nil, service.ErrUserNotFound).Once()

	authMw := middleware.AuthMiddleware(mockUsers, zerolog.Nop())
	nextCalled := false
	h := authMw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.SetBasicAuth("nobody@example.com", "whatever")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	denialBody(t, rr)
	assert.False(t, nextCalled)
	mockUsers.AssertExpectations(t)
}

func TestAuthMiddleware_WrongPassword(t *testing.T) {
	mockUsers := new(MockUserService)
	mockUsers.On("GetByEmail", mock.Anything, "joe@smith.com").
		Return(&model.User{ID: 1, EmailAddress: "joe@smith.com", Password: hashed(t, "correct")}, nil).Once()

	authMw := middleware.AuthMiddleware(mockUsers, zerolog.Nop())
	nextCalled := false
	h := authMw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.SetBasicAuth("joe@smith.com", "wrong")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	denialBody(t, rr)
	assert.False(t, nextCalled)
	mockUsers.AssertExpectations(t)
}

func TestAuthMiddleware_Success(t *testing.T) {
	user := &model.User{
		ID:           1,
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		Password:     hashed(t, "joepassword"),
	}
	mockUsers := new(MockUserService)
	mockUsers.On("GetByEmail", mock.Anything, "joe@smith.com").Return(user, nil).Once()

	authMw := middleware.AuthMiddleware(mockUsers, zerolog.Nop())
	var fromContext *model.User
	h := authMw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := middleware.UserFrom(r.Context())
		require.True(t, ok)
		fromContext = u
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.SetBasicAuth("joe@smith.com", "joepassword")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, fromContext)
	assert.Equal(t, user.ID, fromContext.ID)
	mockUsers.AssertExpectations(t)
}

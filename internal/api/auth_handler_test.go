package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhub/taskhub-api/internal/api/shared"
	"github.com/taskhub/taskhub-api/internal/mocks"
	"github.com/taskhub/taskhub-api/internal/service"
)

func newTestAuthHandler() (*AuthHandler, *mocks.MockUserStore) {
	userStore := mocks.NewMockUserStore()
	hasher := &mocks.MockPasswordHasher{}
	jwtService := &mocks.MockJWTService{Token: "test-token"}
	authService := service.NewAuthService(userStore, hasher, hasher, jwtService, nil)
	return NewAuthHandler(authService), userStore
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestAuthHandlerSignup(t *testing.T) {
	t.Parallel()

	t.Run("valid signup returns 201 with user and token", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler()

		rr := postJSON(t, handler.Signup, "/api/auth/signup",
			`{"email":"a@x.com","password":"secret1"}`)
		require.Equal(t, http.StatusCreated, rr.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "a@x.com", resp.User.Email)
		assert.NotEmpty(t, resp.User.ID)
		assert.Equal(t, "test-token", resp.Token)

		assert.NotContains(t, rr.Body.String(), "hashed:")
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler()

		rr := postJSON(t, handler.Signup, "/api/auth/signup",
			`{"email":"a@x.com","password":"secret1"}`)
		require.Equal(t, http.StatusCreated, rr.Code)

		rr = postJSON(t, handler.Signup, "/api/auth/signup",
			`{"email":"a@x.com","password":"other"}`)
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), "Email already registered")
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: `{"email":`},
		{name: "missing email", body: `{"password":"secret1"}`},
		{name: "missing password", body: `{"email":"a@x.com"}`},
		{name: "invalid email format", body: `{"email":"not-an-email","password":"secret1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name+" returns 400", func(t *testing.T) {
			t.Parallel()
			handler, _ := newTestAuthHandler()
			rr := postJSON(t, handler.Signup, "/api/auth/signup", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *AuthHandler {
		t.Helper()
		handler, _ := newTestAuthHandler()
		rr := postJSON(t, handler.Signup, "/api/auth/signup",
			`{"email":"a@x.com","password":"secret1"}`)
		require.Equal(t, http.StatusCreated, rr.Code)
		return handler
	}

	t.Run("valid credentials return 200 with fresh token", func(t *testing.T) {
		t.Parallel()
		handler := seed(t)

		rr := postJSON(t, handler.Login, "/api/auth/login",
			`{"email":"a@x.com","password":"secret1"}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "a@x.com", resp.User.Email)
		assert.Equal(t, "test-token", resp.Token)
	})

	t.Run("unknown email and wrong password give identical 401 bodies", func(t *testing.T) {
		t.Parallel()
		handler := seed(t)

		unknown := postJSON(t, handler.Login, "/api/auth/login",
			`{"email":"nobody@x.com","password":"secret1"}`)
		wrong := postJSON(t, handler.Login, "/api/auth/login",
			`{"email":"a@x.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.Equal(t, http.StatusUnauthorized, wrong.Code)
		assert.Contains(t, unknown.Body.String(), "Invalid credentials")
		assert.Contains(t, wrong.Body.String(), "Invalid credentials")
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		t.Parallel()
		handler := seed(t)
		rr := postJSON(t, handler.Login, "/api/auth/login", `not json`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthHandlerMe(t *testing.T) {
	t.Parallel()

	t.Run("returns the authenticated user's profile", func(t *testing.T) {
		t.Parallel()
		handler, userStore := newTestAuthHandler()

		rr := postJSON(t, handler.Signup, "/api/auth/signup",
			`{"email":"a@x.com","password":"secret1"}`)
		require.Equal(t, http.StatusCreated, rr.Code)
		userID := userStore.Users["a@x.com"].ID

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req = req.WithContext(context.WithValue(req.Context(), shared.UserIDContextKey, userID))
		rr = httptest.NewRecorder()
		handler.Me(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, userID.String(), resp.ID)
		assert.Equal(t, "a@x.com", resp.Email)
		assert.NotContains(t, rr.Body.String(), "hashed:")
	})

	t.Run("missing user ID in context returns 401", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler()

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rr := httptest.NewRecorder()
		handler.Me(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token for a deleted user returns 404", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler()

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req = req.WithContext(context.WithValue(req.Context(), shared.UserIDContextKey, uuid.New()))
		rr := httptest.NewRecorder()
		handler.Me(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Pavan Shetty", body["fullName"])
		require.Equal(t, "pavan@example.com", body["email"])
		require.Equal(t, "secret", body["password"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Registration successful!"})
	}))
	defer srv.Close()

	msg, err := NewClient(srv.URL).Register(context.Background(), "Pavan Shetty", "pavan@example.com", "secret")

	require.NoError(t, err)
	require.Equal(t, "Registration successful!", msg)
}

func TestRegister_DuplicateEmailSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "User with this email already exists.",
		})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Register(context.Background(), "Pavan", "dup@example.com", "secret")

	require.EqualError(t, err, "User with this email already exists.")
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Login successful!",
			"user":    map[string]string{"full_name": "Pavan Shetty", "email": "pavan@example.com"},
		})
	}))
	defer srv.Close()

	user, msg, err := NewClient(srv.URL).Login(context.Background(), "pavan@example.com", "secret")

	require.NoError(t, err)
	require.Equal(t, "Login successful!", msg)
	require.NotNil(t, user)
	require.Equal(t, "Pavan Shetty", user.FullName)
	require.Equal(t, "pavan@example.com", user.Email)
}

func TestLogin_InvalidCredentialsSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Invalid email or password.",
		})
	}))
	defer srv.Close()

	_, _, err := NewClient(srv.URL).Login(context.Background(), "pavan@example.com", "wrong")

	require.EqualError(t, err, "Invalid email or password.")
}

func TestLogin_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, _, err := NewClient(srv.URL).Login(context.Background(), "a@b.c", "x")

	require.ErrorIs(t, err, ErrUnavailable)
}

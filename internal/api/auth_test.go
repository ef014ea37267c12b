package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Login(t *testing.T) {
	t.Parallel()

	var body map[string]string
	client, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"token":"session-token","user":{"id":"u1","name":"Jane","email":"jane@example.com"}}`))
	}))

	session, err := client.Login(context.Background(), "jane@example.com", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "session-token", session.Token)
	require.Equal(t, "jane@example.com", body["email"])
	require.Equal(t, "hunter2", body["password"])

	// Login returns the session; it does not store the token by itself.
	stored, err := tokens.Token()
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestClient_Logout(t *testing.T) {
	t.Parallel()

	t.Run("clears the token on remote success", func(t *testing.T) {
		t.Parallel()

		client, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/auth/logout", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}))
		require.NoError(t, tokens.Set("tok"))

		require.NoError(t, client.Logout(context.Background()))
		stored, err := tokens.Token()
		require.NoError(t, err)
		require.Empty(t, stored)
	})

	t.Run("keeps the token when the remote call fails", func(t *testing.T) {
		t.Parallel()

		client, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		require.NoError(t, tokens.Set("tok"))

		err := client.Logout(context.Background())
		require.Error(t, err)
		stored, terr := tokens.Token()
		require.NoError(t, terr)
		require.Equal(t, "tok", stored)
	})
}

func TestClient_RefreshToken(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/refresh", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"token":"fresh","user":{"id":"u1","name":"Jane","email":"jane@example.com"}}`))
	}))

	session, err := client.RefreshToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, "fresh", session.Token)
}

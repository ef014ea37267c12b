package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/thuraaung/receipt-wallet/internal/models"
)

func TestClient_WalletPasses(t *testing.T) {
	t.Parallel()

	t.Run("create sends the receipt id", func(t *testing.T) {
		t.Parallel()

		var body map[string]string
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/wallet/passes", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			_, _ = w.Write([]byte(`{"id":"p1","type":"receipt","title":"Walmart","receiptId":"r1","status":"active"}`))
		}))

		pass, err := client.CreateWalletPass(context.Background(), "r1")
		require.NoError(t, err)
		require.Equal(t, "r1", body["receiptId"])
		require.Equal(t, models.PassStatusActive, pass.Status)
	})

	t.Run("update sends only supplied fields", func(t *testing.T) {
		t.Parallel()

		var body map[string]any
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/wallet/passes/p1", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			_, _ = w.Write([]byte(`{"id":"p1","type":"receipt","title":"Walmart","status":"archived"}`))
		}))

		status := models.PassStatusArchived
		pass, err := client.UpdateWalletPass(context.Background(), "p1", models.WalletPassUpdate{Status: &status})
		require.NoError(t, err)
		require.Equal(t, "archived", body["status"])
		_, hasTitle := body["title"]
		require.False(t, hasTitle)
		require.Equal(t, models.PassStatusArchived, pass.Status)
	})
}

package pages

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gitlab.com/thuraaung/receipt-wallet/internal/api"
)

func newTestAPI(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return api.New(server.URL, api.NewMemoryTokenStore(), time.Second)
}

// failingAPI answers every request with a server error.
func failingAPI(t *testing.T) *api.Client {
	t.Helper()
	return newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
}

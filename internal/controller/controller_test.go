package controller_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"meetapp/internal/credentials"
	"meetapp/internal/gateway"
	"meetapp/internal/session"
	"meetapp/internal/transport"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newStack wires a credential store, dispatcher, gateway and session façade
// against a test backend.
func newStack(t *testing.T, handler http.Handler) (*session.Facade, *credentials.Store) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := credentials.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	client := transport.NewClient(transport.Options{
		Credentials: store,
		Logger:      discardLogger(),
	})

	gw, err := gateway.New(gateway.Config{
		BaseURL:    server.URL,
		HTTPClient: client,
		Logger:     discardLogger(),
	})
	require.NoError(t, err)

	return session.New(gw), store
}

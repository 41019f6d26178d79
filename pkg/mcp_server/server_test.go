package mcp_server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheckEndpoint(t *testing.T) {
	srv := NewServerWithController(tool.NewController(nil, nil, nil), Config{
		LocalAddress:     ":0",
		EnableHTTPServer: true,
	})
	require.NotNil(t, srv.httpServer)

	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHTTPServerDisabled(t *testing.T) {
	srv := NewServerWithController(tool.NewController(nil, nil, nil), Config{})
	assert.Nil(t, srv.httpServer)

	// Both transport controls are no-ops without the HTTP server.
	assert.NoError(t, srv.Run())
	assert.NoError(t, srv.Close(context.Background()))
}

// Package mcp_server assembles the MCP server of the BU server: tool
// registration, the stdio transport, and the optional SSE transport.
package mcp_server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mark3labs/mcp-go/server"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/bu_client"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/filecontent"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/tool"
	"github.com/sirupsen/logrus"
)

type Config struct {
	BUServer bu_client.Config `yaml:"bu_server"`

	// LocalAddress is the listen address of the SSE transport, e.g. ":3400".
	// Ignored when EnableHTTPServer is false.
	LocalAddress     string `yaml:"local_address"`
	EnableHTTPServer bool   `yaml:"enable_http_server"`
}

type Server struct {
	ctrl      *tool.Controller
	mcpServer *server.MCPServer

	httpServer *http.Server
}

func NewServerWithConfig(cfg Config) *Server {
	client := bu_client.NewClient(cfg.BUServer)
	ctrl := tool.NewController(
		client,
		bu_client.NewAuthenticationResolver(client),
		filecontent.NewHTTPResolver(),
	)
	return NewServerWithController(ctrl, cfg)
}

func NewServerWithController(ctrl *tool.Controller, cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		tool.ServerName,
		tool.ServerVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	for _, def := range tool.Definitions() {
		mcpServer.AddTool(def, ctrl.Dispatch)
	}

	srv := &Server{
		ctrl:      ctrl,
		mcpServer: mcpServer,
	}

	if cfg.EnableHTTPServer {
		sseServer := server.NewSSEServer(
			mcpServer,
			server.WithSSEEndpoint("/sse"),
			server.WithMessageEndpoint("/message"),
		)

		r := mux.NewRouter()
		r.HandleFunc("/healthz", healthCheck).Methods(http.MethodGet)
		r.PathPrefix("/").Handler(sseServer)
		srv.httpServer = &http.Server{
			Addr:    cfg.LocalAddress,
			Handler: r,
		}
	}
	return srv
}

// ServeStdio runs the stdio transport. It blocks until stdin is closed or the
// client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Run starts the SSE transport. It is a no-op when the HTTP server is
// disabled.
func (s *Server) Run() error {
	if s.httpServer == nil {
		return nil
	}

	logrus.Infof("SSE transport listening on %s", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Close(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.httpServer.SetKeepAlivesEnabled(false)
	return s.httpServer.Shutdown(ctx)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

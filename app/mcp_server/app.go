package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/openebl/ebl-mcp-server/pkg/config"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/bu_client"
	"github.com/openebl/ebl-mcp-server/pkg/util"
	"github.com/sirupsen/logrus"
)

const appName string = "ebl-mcp-server"

type CLI struct {
	Server struct {
	} `cmd:"" default:"1" help:"Run the MCP server"`
	Config string `short:"c" long:"config" help:"Path to the configuration file. Environment variables are used when omitted" type:"existingfile" optional:""`
}

type Config struct {
	BUServerURL      string `yaml:"bu_server_url"`
	BUServerAPIKey   string `yaml:"bu_server_api_key"`
	EnableHTTPServer *bool  `yaml:"enable_http_server"`
	HTTPServerPort   int    `yaml:"http_server_port"`
	OTLPEndpoint     string `yaml:"otlp_endpoint"`
}

type App struct{}

func (a *App) Run() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.UsageOnError())
	switch ctx.Command() {
	case "server":
		a.runServer(cli)
	default:
	}
}

// loadConfig reads the optional configuration file, then fills the gaps from
// the environment. A fresh checkout with no config file and no environment
// still starts against a local BU server.
func loadConfig(filePath string) (Config, error) {
	appConfig := Config{}
	if filePath != "" {
		if err := config.FromFile(filePath, &appConfig); err != nil {
			return Config{}, err
		}
	}

	if appConfig.BUServerURL == "" {
		appConfig.BUServerURL = config.EnvOr("BU_SERVER_URL", "http://localhost:8080")
	}
	if appConfig.BUServerAPIKey == "" {
		appConfig.BUServerAPIKey = os.Getenv("BU_SERVER_API_KEY")
	}
	if appConfig.EnableHTTPServer == nil {
		appConfig.EnableHTTPServer = util.Ptr(config.EnvBool("ENABLE_HTTP_SERVER", true))
	}
	if appConfig.HTTPServerPort == 0 {
		appConfig.HTTPServerPort = config.EnvInt("HTTP_SERVER_PORT", 3400)
	}
	return appConfig, nil
}

func (a *App) runServer(cli CLI) {
	ctx := context.Background()

	appConfig, err := loadConfig(cli.Config)
	if err != nil {
		logrus.Errorf("failed to load config: %v", err)
		os.Exit(128)
	}

	logrus.Infof(
		"configuration loaded: BU_SERVER_URL=%s BU_SERVER_API_KEY=%s ENABLE_HTTP_SERVER=%t HTTP_SERVER_PORT=%d",
		appConfig.BUServerURL,
		maskSecret(appConfig.BUServerAPIKey),
		*appConfig.EnableHTTPServer,
		appConfig.HTTPServerPort,
	)

	if endpoint := appConfig.OTLPEndpoint; endpoint != "" {
		exporter, err := otlp_util.InitExporter(
			otlp_util.WithContext(ctx),
			otlp_util.WithEndPoint(endpoint),
			otlp_util.WithServiceName(appName),
			otlp_util.WithInSecure(),
			otlp_util.WithErrorHandler(func(err error) {
				logrus.Warnf("OTLP error: %v", err)
			}),
		)
		if err != nil {
			logrus.Errorf("failed to initialize OTLP exporter: %v", err)
			os.Exit(128)
		}
		defer func() { _ = exporter.Shutdown(ctx) }()
	}

	serverConfig := mcp_server.Config{
		BUServer: bu_client.Config{
			BaseURL: appConfig.BUServerURL,
			APIKey:  appConfig.BUServerAPIKey,
		},
		LocalAddress:     net.JoinHostPort("", strconv.Itoa(appConfig.HTTPServerPort)),
		EnableHTTPServer: *appConfig.EnableHTTPServer,
	}
	srv := mcp_server.NewServerWithConfig(serverConfig)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stdioDone := make(chan struct{})
	go func() {
		defer close(stdioDone)
		if err := srv.ServeStdio(); err != nil {
			logrus.Errorf("failed to run stdio transport: %v", err)
			os.Exit(1)
		}
	}()

	go func() {
		if err := srv.Run(); err != nil {
			logrus.Errorf("failed to run SSE transport: %v", err)
			os.Exit(1)
		}
	}()

	// The server stops on a signal or when the stdio client hangs up.
	select {
	case <-ctx.Done():
	case <-stdioDone:
	}

	// Restore default behavior on the signals we are listening to
	stop()
	logrus.Info("shutting down gracefully, press Ctrl+C again to force")

	closeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Close(closeCtx); err != nil {
		logrus.Warnf("failed to close SSE transport: %v", err)
		os.Exit(1)
	}
}

func maskSecret(secret string) string {
	if secret == "" {
		return "not set"
	}
	return "****"
}

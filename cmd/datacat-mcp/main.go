package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	mcpadapter "datacat/internal/adapters/mcp"
	"datacat/internal/application"
	"datacat/internal/config"
	"datacat/internal/logging"
)

func main() {
	configFlag := flag.String("config", config.DefaultPath(), "path to the config file")
	dataFlag := flag.String("data", "", "directory or base URL holding the dataset documents")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("datacat-mcp: %v", err)
	}
	if *dataFlag != "" {
		cfg.Data = *dataFlag
	}

	// stdout carries the protocol, so logs go to stderr unless a file is set.
	logger, err := logging.New(cfg.Log, "stderr")
	if err != nil {
		log.Fatalf("datacat-mcp: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	source, err := cfg.Source()
	if err != nil {
		logger.Fatal("invalid data source", zap.Error(err))
	}
	data := application.NewDataProvider(source, logger.Named("data"))

	mcpServer := server.NewMCPServer(
		"datacat-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, data)

	logger.Info("serving MCP over stdio", zap.String("data", cfg.Data))
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal("datacat-mcp stopped", zap.Error(err))
	}
}

package tool

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func PingToolDefinition() mcp.Tool {
	return mcp.NewTool("ping",
		mcp.WithDescription("Simple ping tool to test the MCP server connection"),
		mcp.WithString("message",
			mcp.Description("Optional message to echo back"),
		),
	)
}

func (c *Controller) Ping(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message := request.GetString("message", "")
	if message == "" {
		message = "No message provided"
	}

	text := fmt.Sprintf(
		"PING RESPONSE:\nServer: %s\nTimestamp: %s\nMessage: %s\nStatus: OK",
		ServerName,
		time.Now().UTC().Format(time.RFC3339),
		message,
	)
	return mcp.NewToolResultText(text), nil
}

package tool

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/model"
	"github.com/sirupsen/logrus"
)

// Definitions returns every tool this server advertises, in the order they
// are listed to clients.
func Definitions() []mcp.Tool {
	return []mcp.Tool{
		PingToolDefinition(),
		IssueEBLToolDefinition(),
		ListEBLsToolDefinition(),
	}
}

// Dispatch routes a tool call to its handler by name. A name outside the
// advertised set yields an in-band error result, not a transport error.
func (c *Controller) Dispatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	switch request.Params.Name {
	case "ping":
		return c.Ping(ctx, request)
	case "issue_ebl":
		return c.IssueEBL(ctx, request)
	case "list_ebls":
		return c.ListEBLs(ctx, request)
	}

	err := fmt.Errorf("Unknown tool: %s%w", request.Params.Name, model.ErrUnknownToolError)
	logrus.Warnf("tool dispatch failed: %v", err)
	return mcp.NewToolResultError(err.Error()), nil
}

// Package tool implements the MCP tool handlers of the eBL MCP server. Each
// invocation is an independent, stateless unit of work: validate the
// arguments, resolve collaborators, call the BU server, shape the response.
package tool

import (
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/bu_client"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/filecontent"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/model"
	"github.com/sirupsen/logrus"
)

const (
	ServerName    = "ebl-mcp-server"
	ServerVersion = "0.0.1"
)

type Controller struct {
	client       bu_client.EBLClient
	authResolver bu_client.AuthenticationResolver
	fileResolver filecontent.Resolver
}

func NewController(client bu_client.EBLClient, authResolver bu_client.AuthenticationResolver, fileResolver filecontent.Resolver) *Controller {
	return &Controller{
		client:       client,
		authResolver: authResolver,
		fileResolver: fileResolver,
	}
}

// errorResult converts any pipeline error into the uniform tool-result
// envelope. Nothing escapes a handler as a transport-level error.
func (c *Controller) errorResult(toolName string, err error) *mcp.CallToolResult {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		logrus.Debugf("%s tool rejected input: %v", toolName, vErr)
		return mcp.NewToolResultError(fmt.Sprintf("Validation error in %s tool:\n%s", toolName, vErr.Error()))
	}

	if errors.Is(err, model.ErrInvalidParameter) {
		logrus.Debugf("%s tool rejected input: %v", toolName, err)
	} else {
		logrus.Errorf("error in %s tool: %v", toolName, err)
	}
	return mcp.NewToolResultError(fmt.Sprintf("Error in %s tool: %v", toolName, err))
}

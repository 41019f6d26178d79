package tool_test

import (
	"context"
	"testing"

	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitions(t *testing.T) {
	defs := tool.Definitions()
	require.Len(t, defs, 3)
	assert.Equal(t, "ping", defs[0].Name)
	assert.Equal(t, "issue_ebl", defs[1].Name)
	assert.Equal(t, "list_ebls", defs[2].Name)
}

func TestDispatchKnownTool(t *testing.T) {
	ctrl := tool.NewController(nil, nil, nil)

	result, err := ctrl.Dispatch(context.Background(), callToolRequest("ping", nil))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Contains(t, resultText(t, result, 0), "PING RESPONSE:")
}

func TestDispatchUnknownTool(t *testing.T) {
	ctrl := tool.NewController(nil, nil, nil)

	result, err := ctrl.Dispatch(context.Background(), callToolRequest("transfer_ebl", nil))
	require.NoError(t, err)
	require.True(t, result.IsError)
	assert.Equal(t, "Unknown tool: transfer_ebl", resultText(t, result, 0))
}

package tool_test

import (
	"testing"

	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/model"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/tool"
	"github.com/stretchr/testify/assert"
)

func TestFormatListSummary(t *testing.T) {
	result := model.ListEBLsToolResponse{
		Total: 1,
		EBLs: []model.EBLSummary{
			{
				ID:        "ebl-1",
				BLNumber:  "BL-001",
				BLDocType: model.HouseBillOfLading,
				POL:       model.Location{LocationName: "Port of Keelung", UNLocCode: "TWKEL"},
				POD:       model.Location{UNLocCode: "NLRTM"},
			},
		},
	}

	expected := "Found 1 electronic Bill of Lading\n\n" +
		"Showing 1 result:\n\n" +
		"1. BL-001 (HouseBillOfLading)\n" +
		"   ID: ebl-1\n" +
		"   POL: Port of Keelung\n" +
		"   POD: NLRTM"
	assert.Equal(t, expected, tool.FormatListSummary(result))

	// Same input, same output.
	assert.Equal(t, expected, tool.FormatListSummary(result))
}

func TestFormatListSummaryWithReport(t *testing.T) {
	result := model.ListEBLsToolResponse{
		Total:  0,
		Report: &model.EBLStatusReport{ActionNeeded: 1, Upcoming: 2, Sent: 3, Archive: 4},
	}

	expected := "Found 0 electronic Bills of Lading\n\n" +
		"Status breakdown:\n" +
		"- Action needed: 1\n" +
		"- Upcoming: 2\n" +
		"- Sent: 3\n" +
		"- Archived: 4\n\n" +
		"No eBLs match the specified criteria."
	assert.Equal(t, expected, tool.FormatListSummary(result))
}

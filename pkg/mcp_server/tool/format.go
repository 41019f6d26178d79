package tool

import (
	"fmt"
	"strings"

	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/model"
)

// FormatListSummary renders the human-readable companion text of a list_ebls
// result. The structured JSON block carries the full data; this block is for
// the model or human reading the conversation.
func FormatListSummary(result model.ListEBLsToolResponse) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("Found %d electronic Bill%s of Lading", result.Total, plural(result.Total)))

	if result.Report != nil {
		sb.WriteString("\n\nStatus breakdown:")
		sb.WriteString(fmt.Sprintf("\n- Action needed: %d", result.Report.ActionNeeded))
		sb.WriteString(fmt.Sprintf("\n- Upcoming: %d", result.Report.Upcoming))
		sb.WriteString(fmt.Sprintf("\n- Sent: %d", result.Report.Sent))
		sb.WriteString(fmt.Sprintf("\n- Archived: %d", result.Report.Archive))
	}

	if len(result.EBLs) == 0 {
		sb.WriteString("\n\nNo eBLs match the specified criteria.")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("\n\nShowing %d result%s:", len(result.EBLs), plural(len(result.EBLs))))
	for i, ebl := range result.EBLs {
		sb.WriteString(fmt.Sprintf("\n\n%d. %s (%s)", i+1, ebl.BLNumber, ebl.BLDocType))
		sb.WriteString(fmt.Sprintf("\n   ID: %s", ebl.ID))
		sb.WriteString(fmt.Sprintf("\n   POL: %s", locationLabel(ebl.POL)))
		sb.WriteString(fmt.Sprintf("\n   POD: %s", locationLabel(ebl.POD)))
	}
	return sb.String()
}

func locationLabel(loc model.Location) string {
	if loc.LocationName != "" {
		return loc.LocationName
	}
	return loc.UNLocCode
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

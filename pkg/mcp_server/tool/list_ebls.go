package tool

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/bu_client"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/eblrecord"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/model"
	"github.com/openebl/ebl-mcp-server/pkg/util"
	"github.com/sirupsen/logrus"
)

const defaultListLimit = 20

func ListEBLsToolDefinition() mcp.Tool {
	return mcp.NewTool("list_ebls",
		mcp.WithDescription("List all electronic Bills of Lading with optional filtering"),
		mcp.WithString("requester_bu_id",
			mcp.Required(),
			mcp.Description("Business Unit ID making the request"),
		),
		mcp.WithString("status",
			mcp.Required(),
			mcp.Description("Filter eBLs by status category"),
			mcp.Enum(
				string(model.EBLStatusActionNeeded),
				string(model.EBLStatusUpcoming),
				string(model.EBLStatusSent),
				string(model.EBLStatusArchive),
			),
		),
		mcp.WithString("keyword",
			mcp.Description("Search keyword, matches against the sender or the BL number"),
		),
		mcp.WithNumber("offset",
			mcp.Description("Number of records to skip"),
			mcp.Min(0),
			mcp.DefaultNumber(0),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of records to return"),
			mcp.Min(1),
			mcp.Max(100),
			mcp.DefaultNumber(defaultListLimit),
		),
		mcp.WithBoolean("include_report",
			mcp.Description("Whether to include the status breakdown report"),
			mcp.DefaultBool(false),
		),
	)
}

func (c *Controller) ListEBLs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var req model.ListEBLsToolRequest
	if err := decodeToolArgs(request.GetArguments(), &req); err != nil {
		return c.errorResult("list_ebls", err), nil
	}
	if req.Limit == nil {
		req.Limit = util.Ptr(defaultListLimit)
	}
	if err := ValidateListEBLsToolRequest(req); err != nil {
		return c.errorResult("list_ebls", err), nil
	}

	traceID := util.NewUUID()
	logrus.Debugf("list_ebls[%s] requester %q status %q offset %d limit %d", traceID, req.RequesterBUID, req.Status, req.Offset, *req.Limit)

	listResult, err := c.client.ListEBLs(ctx, req.RequesterBUID, bu_client.ListEBLsRequest{
		Status:  string(req.Status),
		Keyword: req.Keyword,
		Offset:  req.Offset,
		Limit:   *req.Limit,
		Report:  req.IncludeReport,
	})
	if err != nil {
		return c.errorResult("list_ebls", err), nil
	}

	result := buildListResponse(listResult)
	logrus.Debugf("list_ebls[%s] returning %d of %d records", traceID, len(result.EBLs), result.Total)
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(FormatListSummary(result)),
			mcp.NewTextContent(util.StructToJSON(result)),
		},
	}, nil
}

// buildListResponse summarizes every record of the backend page. Records that
// cannot be summarized are dropped instead of failing the whole page.
func buildListResponse(listResult model.ListBillOfLadingRecord) model.ListEBLsToolResponse {
	summaries := make([]model.EBLSummary, 0, len(listResult.Records))
	for _, record := range listResult.Records {
		summary, err := eblrecord.Summarize(record)
		if err != nil {
			logrus.Warnf("failed to summarize bill of lading record: %v", err)
			continue
		}
		if summary == nil {
			continue
		}
		summaries = append(summaries, *summary)
	}

	total := listResult.Total
	if total == 0 {
		total = len(summaries)
	}
	return model.ListEBLsToolResponse{
		Total:  total,
		EBLs:   summaries,
		Report: listResult.Report,
	}
}

package tool

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/bu_client"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/model"
	"github.com/openebl/ebl-mcp-server/pkg/util"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func IssueEBLToolDefinition() mcp.Tool {
	return mcp.NewTool("issue_ebl",
		mcp.WithDescription("Issue a new electronic Bill of Lading (eBL) or save it as a draft"),
		mcp.WithString("requester_bu_id",
			mcp.Required(),
			mcp.Description("Business Unit ID of the party issuing the eBL"),
		),
		mcp.WithObject("file_content",
			mcp.Required(),
			mcp.Description("The Bill of Lading document. Provide either inline base64 content (source \"content\") or a URL to fetch it from (source \"url\")"),
			mcp.Properties(map[string]any{
				"source": map[string]any{
					"type": "string",
					"enum": []string{"content", "url"},
				},
				"name": map[string]any{
					"type":        "string",
					"description": "File name, required for the content source",
				},
				"type": map[string]any{
					"type":        "string",
					"description": "MIME type of the file, required for the content source",
				},
				"content": map[string]any{
					"type":        "string",
					"description": "Base64 encoded file content, required for the content source",
				},
				"url": map[string]any{
					"type":        "string",
					"description": "URL of the file, required for the url source",
				},
			}),
		),
		mcp.WithString("bl_number",
			mcp.Required(),
			mcp.Description("Bill of Lading number"),
		),
		mcp.WithString("bl_doc_type",
			mcp.Required(),
			mcp.Description("Type of the Bill of Lading document"),
			mcp.Enum(string(model.MasterBillOfLading), string(model.HouseBillOfLading)),
		),
		mcp.WithObject("pol",
			mcp.Required(),
			mcp.Description("Port of loading"),
			mcp.Properties(map[string]any{
				"locationName":   map[string]any{"type": "string"},
				"UNLocationCode": map[string]any{"type": "string"},
			}),
		),
		mcp.WithObject("pod",
			mcp.Required(),
			mcp.Description("Port of discharge"),
			mcp.Properties(map[string]any{
				"locationName":   map[string]any{"type": "string"},
				"UNLocationCode": map[string]any{"type": "string"},
			}),
		),
		mcp.WithString("shipper",
			mcp.Required(),
			mcp.Description("Business Unit ID of the shipper"),
		),
		mcp.WithString("consignee",
			mcp.Required(),
			mcp.Description("Business Unit ID of the consignee"),
		),
		mcp.WithString("release_agent",
			mcp.Required(),
			mcp.Description("Business Unit ID of the release agent"),
		),
		mcp.WithBoolean("draft",
			mcp.Required(),
			mcp.Description("true saves the eBL as a draft, false issues it immediately"),
		),
		mcp.WithBoolean("to_order",
			mcp.Description("Whether the eBL is negotiable (to order)"),
		),
		mcp.WithString("eta",
			mcp.Description("Estimated time of arrival, format YYYY-MM-DD"),
		),
		mcp.WithString("endorsee",
			mcp.Description("Business Unit ID of the endorsee, required when issuing a to-order eBL"),
		),
		mcp.WithArray("notify_parties",
			mcp.Description("Business Unit IDs of the notify parties, at most 3. Required when issuing a to-order eBL"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("note",
			mcp.Description("Optional note attached to the eBL"),
		),
		mcp.WithBoolean("encrypt_content",
			mcp.Description("Whether the document content should be encrypted at rest"),
			mcp.DefaultBool(false),
		),
	)
}

func (c *Controller) IssueEBL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var req model.IssueEBLToolRequest
	if err := decodeToolArgs(request.GetArguments(), &req); err != nil {
		return c.errorResult("issue_ebl", err), nil
	}
	if err := ValidateIssueEBLToolRequest(req); err != nil {
		return c.errorResult("issue_ebl", err), nil
	}

	traceID := util.NewUUID()
	logrus.Debugf("issue_ebl[%s] requester %q bl_number %q", traceID, req.RequesterBUID, req.BLNumber)

	// The file fetch and the authentication lookup are independent of each
	// other. Run them concurrently and fail the call on the first error.
	var file model.FileContent
	var authenticationID string
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		file, err = c.fileResolver.Resolve(egCtx, req.FileContent)
		return err
	})
	eg.Go(func() error {
		var err error
		authenticationID, err = c.authResolver.ActiveAuthenticationID(egCtx, req.RequesterBUID)
		return err
	})
	if err := eg.Wait(); err != nil {
		logrus.Debugf("issue_ebl[%s] preparation failed: %v", traceID, err)
		return c.errorResult("issue_ebl", err), nil
	}

	record, err := c.client.IssueEBL(ctx, req.RequesterBUID, buildIssueRequest(req, authenticationID, file))
	if err != nil {
		return c.errorResult("issue_ebl", err), nil
	}

	result := issueResponseFromRecord(record)
	verb := "issued"
	if *req.Draft {
		verb = "drafted"
	}
	logrus.Debugf("issue_ebl[%s] %s eBL %q version %d", traceID, verb, result.ID, result.Version)
	return mcp.NewToolResultText(fmt.Sprintf("Successfully %s eBL: %s", verb, util.StructToJSONIndent(result))), nil
}

// buildIssueRequest maps the validated tool input onto the BU server wire
// shape. Optional fields absent from the input stay absent on the wire.
func buildIssueRequest(req model.IssueEBLToolRequest, authenticationID string, file model.FileContent) bu_client.IssueEBLRequest {
	return bu_client.IssueEBLRequest{
		AuthenticationID: authenticationID,
		File:             file,
		BLNumber:         req.BLNumber,
		BLDocType:        req.BLDocType,
		POL:              req.POL,
		POD:              req.POD,
		Shipper:          req.Shipper,
		Consignee:        req.Consignee,
		ReleaseAgent:     req.ReleaseAgent,
		Draft:            req.Draft,
		ToOrder:          req.ToOrder,
		ETA:              req.ETA,
		Endorsee:         req.Endorsee,
		NotifyParties:    req.NotifyParties,
		Note:             req.Note,
		EncryptContent:   req.EncryptContent,
	}
}

func issueResponseFromRecord(record model.BillOfLadingRecord) model.IssueEBLToolResponse {
	result := model.IssueEBLToolResponse{Version: 1}
	if record.BL == nil {
		return result
	}
	result.ID = record.BL.ID
	if record.BL.Version > 0 {
		result.Version = record.BL.Version
	}
	result.Holder = record.BL.CurrentOwner
	return result
}

package tool_test

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/bu_client"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/model"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/tool"
	mock_bu_client "github.com/openebl/ebl-mcp-server/test/mock/mcp_server/bu_client"
	mock_filecontent "github.com/openebl/ebl-mcp-server/test/mock/mcp_server/filecontent"
	"github.com/stretchr/testify/suite"
)

type IssueEBLTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockCtrl     *gomock.Controller
	client       *mock_bu_client.MockEBLClient
	authResolver *mock_bu_client.MockAuthenticationResolver
	fileResolver *mock_filecontent.MockResolver
	ctrl         *tool.Controller
}

func TestIssueEBL(t *testing.T) {
	suite.Run(t, &IssueEBLTestSuite{})
}

func (s *IssueEBLTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.client = mock_bu_client.NewMockEBLClient(s.mockCtrl)
	s.authResolver = mock_bu_client.NewMockAuthenticationResolver(s.mockCtrl)
	s.fileResolver = mock_filecontent.NewMockResolver(s.mockCtrl)
	s.ctrl = tool.NewController(s.client, s.authResolver, s.fileResolver)
}

func (s *IssueEBLTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func issueArgs(draft bool) map[string]any {
	return map[string]any{
		"requester_bu_id": "did:openebl:issuer",
		"file_content": map[string]any{
			"source":  "content",
			"name":    "bl.pdf",
			"type":    "application/pdf",
			"content": base64.StdEncoding.EncodeToString([]byte("%PDF-1.7")),
		},
		"bl_number":     "BL-001",
		"bl_doc_type":   "HouseBillOfLading",
		"pol":           map[string]any{"locationName": "Port of Keelung", "UNLocationCode": "TWKEL"},
		"pod":           map[string]any{"locationName": "Port of Rotterdam", "UNLocationCode": "NLRTM"},
		"shipper":       "did:openebl:shipper",
		"consignee":     "did:openebl:consignee",
		"release_agent": "did:openebl:release-agent",
		"draft":         draft,
	}
}

func (s *IssueEBLTestSuite) TestDraftEBL() {
	file := model.FileContent{Name: "bl.pdf", Type: "application/pdf", Content: []byte("%PDF-1.7")}
	record := model.BillOfLadingRecord{
		BL: &model.BillOfLadingPack{ID: "ebl-id", CurrentOwner: "did:openebl:issuer"},
	}

	s.fileResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(file, nil)
	s.authResolver.EXPECT().ActiveAuthenticationID(gomock.Any(), gomock.Eq("did:openebl:issuer")).Return("auth-id", nil)
	s.client.EXPECT().IssueEBL(gomock.Any(), gomock.Eq("did:openebl:issuer"), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, req bu_client.IssueEBLRequest) (model.BillOfLadingRecord, error) {
			s.Assert().Equal("auth-id", req.AuthenticationID)
			s.Assert().Equal(file, req.File)
			s.Assert().Equal("BL-001", req.BLNumber)
			s.Require().NotNil(req.Draft)
			s.Assert().True(*req.Draft)
			s.Assert().Nil(req.ToOrder)
			return record, nil
		},
	)

	result, err := s.ctrl.IssueEBL(s.ctx, callToolRequest("issue_ebl", issueArgs(true)))
	s.Require().NoError(err)
	s.Require().False(result.IsError)

	text := resultText(s.T(), result, 0)
	s.Assert().Contains(text, "Successfully drafted eBL:")
	s.Assert().Contains(text, `"id": "ebl-id"`)
	s.Assert().Contains(text, `"version": 1`)
	s.Assert().Contains(text, `"holder": "did:openebl:issuer"`)
}

func (s *IssueEBLTestSuite) TestIssueEBL() {
	record := model.BillOfLadingRecord{
		BL: &model.BillOfLadingPack{ID: "ebl-id", Version: 3, CurrentOwner: "did:openebl:shipper"},
	}

	s.fileResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(model.FileContent{}, nil)
	s.authResolver.EXPECT().ActiveAuthenticationID(gomock.Any(), gomock.Any()).Return("auth-id", nil)
	s.client.EXPECT().IssueEBL(gomock.Any(), gomock.Any(), gomock.Any()).Return(record, nil)

	result, err := s.ctrl.IssueEBL(s.ctx, callToolRequest("issue_ebl", issueArgs(false)))
	s.Require().NoError(err)
	s.Require().False(result.IsError)

	text := resultText(s.T(), result, 0)
	s.Assert().Contains(text, "Successfully issued eBL:")
	s.Assert().Contains(text, `"version": 3`)
}

func (s *IssueEBLTestSuite) TestValidationError() {
	args := issueArgs(true)
	delete(args, "bl_number")

	result, err := s.ctrl.IssueEBL(s.ctx, callToolRequest("issue_ebl", args))
	s.Require().NoError(err)
	s.Require().True(result.IsError)

	text := resultText(s.T(), result, 0)
	s.Assert().Contains(text, "Validation error in issue_ebl tool:")
	s.Assert().Contains(text, "bl_number")
}

func (s *IssueEBLTestSuite) TestFileFetchError() {
	fetchErr := fmt.Errorf("fetch \"https://example.com/bl.pdf\" returned status 404%w", model.ErrFileFetchError)
	s.fileResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(model.FileContent{}, fetchErr)
	s.authResolver.EXPECT().ActiveAuthenticationID(gomock.Any(), gomock.Any()).Return("auth-id", nil).AnyTimes()

	result, err := s.ctrl.IssueEBL(s.ctx, callToolRequest("issue_ebl", issueArgs(true)))
	s.Require().NoError(err)
	s.Require().True(result.IsError)

	text := resultText(s.T(), result, 0)
	s.Assert().Contains(text, "Error in issue_ebl tool:")
	s.Assert().Contains(text, "404")
}

func (s *IssueEBLTestSuite) TestAuthResolutionError() {
	s.fileResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(model.FileContent{}, nil).AnyTimes()
	s.authResolver.EXPECT().ActiveAuthenticationID(gomock.Any(), gomock.Any()).Return("", model.ErrNoActiveAuthentication)

	result, err := s.ctrl.IssueEBL(s.ctx, callToolRequest("issue_ebl", issueArgs(true)))
	s.Require().NoError(err)
	s.Require().True(result.IsError)
	s.Assert().Contains(resultText(s.T(), result, 0), "Error in issue_ebl tool:")
}

func (s *IssueEBLTestSuite) TestBackendError() {
	s.fileResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(model.FileContent{}, nil)
	s.authResolver.EXPECT().ActiveAuthenticationID(gomock.Any(), gomock.Any()).Return("auth-id", nil)
	s.client.EXPECT().IssueEBL(gomock.Any(), gomock.Any(), gomock.Any()).Return(
		model.BillOfLadingRecord{},
		fmt.Errorf("backend returned status 422: eBL number already used%w", model.ErrBackendError),
	)

	result, err := s.ctrl.IssueEBL(s.ctx, callToolRequest("issue_ebl", issueArgs(true)))
	s.Require().NoError(err)
	s.Require().True(result.IsError)
	s.Assert().Contains(resultText(s.T(), result, 0), "eBL number already used")
}

func (s *IssueEBLTestSuite) TestArgumentTypeMismatch() {
	args := issueArgs(true)
	args["draft"] = "yes"

	result, err := s.ctrl.IssueEBL(s.ctx, callToolRequest("issue_ebl", args))
	s.Require().NoError(err)
	s.Require().True(result.IsError)
	s.Assert().Contains(resultText(s.T(), result, 0), "Validation error in issue_ebl tool:")
}

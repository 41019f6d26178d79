// Package bu_client is the REST client of the BU server. The BU server owns
// all business logic and persistence; this package only shapes requests and
// decodes responses.
package bu_client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/model"
	"github.com/openebl/ebl-mcp-server/pkg/util"
	"github.com/sirupsen/logrus"
)

type Config struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Timeout int    `yaml:"timeout"` // Request timeout in seconds. 0 means the default.
}

// IssueEBLRequest is the wire shape of POST /ebl. Optional fields are omitted
// when unset so the BU server's own defaulting applies.
type IssueEBLRequest struct {
	AuthenticationID string                         `json:"authentication_id"`
	File             model.FileContent              `json:"file"`
	BLNumber         string                         `json:"bl_number"`
	BLDocType        model.BillOfLadingDocumentType `json:"bl_doc_type"`
	POL              model.Location                 `json:"pol"`
	POD              model.Location                 `json:"pod"`
	Shipper          string                         `json:"shipper"`
	Consignee        string                         `json:"consignee"`
	ReleaseAgent     string                         `json:"release_agent"`
	Draft            *bool                          `json:"draft"`

	ToOrder        *bool    `json:"to_order,omitempty"`
	ETA            string   `json:"eta,omitempty"`
	Endorsee       string   `json:"endorsee,omitempty"`
	NotifyParties  []string `json:"notify_parties,omitempty"`
	Note           string   `json:"note,omitempty"`
	EncryptContent bool     `json:"encrypt_content,omitempty"`
}

type ListEBLsRequest struct {
	Status  string
	Keyword string
	Offset  int
	Limit   int
	Report  bool
}

type EBLClient interface {
	IssueEBL(ctx context.Context, requesterBUID string, req IssueEBLRequest) (model.BillOfLadingRecord, error)
	ListEBLs(ctx context.Context, requesterBUID string, req ListEBLsRequest) (model.ListBillOfLadingRecord, error)
	GetBusinessUnit(ctx context.Context, id string) (model.BusinessUnit, error)
}

type _Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

func NewClient(cfg Config) *_Client {
	timeout := 30 * time.Second
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}
	return &_Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		timeout: timeout,
	}
}

func (c *_Client) IssueEBL(ctx context.Context, requesterBUID string, req IssueEBLRequest) (model.BillOfLadingRecord, error) {
	var record model.BillOfLadingRecord
	err := c.do(ctx, http.MethodPost, "/ebl", requesterBUID, util.StructToJSONReader(req), &record)
	if err != nil {
		return model.BillOfLadingRecord{}, err
	}
	return record, nil
}

func (c *_Client) ListEBLs(ctx context.Context, requesterBUID string, req ListEBLsRequest) (model.ListBillOfLadingRecord, error) {
	query := url.Values{}
	if req.Status != "" {
		query.Set("status", req.Status)
	}
	if req.Keyword != "" {
		query.Set("keyword", req.Keyword)
	}
	query.Set("offset", strconv.Itoa(req.Offset))
	query.Set("limit", strconv.Itoa(req.Limit))
	query.Set("report", strconv.FormatBool(req.Report))

	var result model.ListBillOfLadingRecord
	err := c.do(ctx, http.MethodGet, "/ebl?"+query.Encode(), requesterBUID, nil, &result)
	if err != nil {
		return model.ListBillOfLadingRecord{}, err
	}
	return result, nil
}

func (c *_Client) GetBusinessUnit(ctx context.Context, id string) (model.BusinessUnit, error) {
	var bu model.BusinessUnit
	err := c.do(ctx, http.MethodGet, "/business_unit/"+url.PathEscape(id), "", nil, &bu)
	if err != nil {
		return model.BusinessUnit{}, err
	}
	return bu, nil
}

// do runs one request against the BU server with a fresh client handle.
// Invocations are stateless, so no connection state is shared between calls.
func (c *_Client) do(ctx context.Context, method, endpoint, requesterBUID string, body io.Reader, out any) error {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true
	transport.MaxIdleConnsPerHost = -1
	client := http.Client{Timeout: c.timeout, Transport: transport}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("create request %s %s: %v%w", method, endpoint, err, model.ErrBackendError)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if requesterBUID != "" {
		req.Header.Set("X-Business-Unit-ID", requesterBUID)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %v%w", method, endpoint, err, model.ErrBackendError)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response of %s %s: %v%w", method, endpoint, err, model.ErrBackendError)
	}

	if resp.StatusCode/100 != 2 {
		msg := extractErrorMessage(respBody)
		logrus.Debugf("%s %s returned status %d: %s", method, endpoint, resp.StatusCode, msg)
		return fmt.Errorf("backend returned status %d: %s%w", resp.StatusCode, msg, model.ErrBackendError)
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(respBody)) == 0 {
		return model.ErrEmptyResponse
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response of %s %s: %v%w", method, endpoint, err, model.ErrBackendError)
	}
	return nil
}

// extractErrorMessage pulls a human readable message out of an error
// response, trying the common message/error JSON shapes before falling back
// to the raw body.
func extractErrorMessage(body []byte) string {
	var errBody struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil {
		if errBody.Message != "" {
			return errBody.Message
		}
		if errBody.Error != "" {
			return errBody.Error
		}
	}
	return strings.TrimSpace(string(body))
}

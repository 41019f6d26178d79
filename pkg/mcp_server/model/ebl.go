package model

import (
	"encoding/json"
	"fmt"
)

type BillOfLadingDocumentType string
type EBLStatusCategory string

const (
	MasterBillOfLading BillOfLadingDocumentType = "MasterBillOfLading"
	HouseBillOfLading  BillOfLadingDocumentType = "HouseBillOfLading"

	EBLStatusActionNeeded EBLStatusCategory = "action_needed"
	EBLStatusUpcoming     EBLStatusCategory = "upcoming"
	EBLStatusSent         EBLStatusCategory = "sent"
	EBLStatusArchive      EBLStatusCategory = "archive"
)

type Location struct {
	LocationName string `json:"locationName"`
	UNLocCode    string `json:"UNLocationCode"`
}

// FileContent is the uniform binary payload the backend accepts. Content is
// base64 encoded on the wire through JSON encoding of []byte.
type FileContent struct {
	Name    string `json:"name"`    // File name
	Type    string `json:"type"`    // MIME type of the file.
	Content []byte `json:"content"` // File content.
}

// RemoteFileContent references a file to be fetched from a URL at issue time.
type RemoteFileContent struct {
	URL string `json:"url"`
}

// FileContentSource is the file reference of an issue_ebl call.
// Inline and Remote are mutually exclusive. Only one of them can be set.
type FileContentSource struct {
	Inline *FileContent
	Remote *RemoteFileContent
}

func (f *FileContentSource) UnmarshalJSON(b []byte) error {
	var probe struct {
		Source string `json:"source"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}

	switch probe.Source {
	case "content":
		inline := &FileContent{}
		if err := json.Unmarshal(b, inline); err != nil {
			return err
		}
		f.Inline = inline
		f.Remote = nil
	case "url":
		remote := &RemoteFileContent{}
		if err := json.Unmarshal(b, remote); err != nil {
			return err
		}
		f.Inline = nil
		f.Remote = remote
	default:
		return fmt.Errorf("file_content.source must be \"content\" or \"url\", got %q", probe.Source)
	}
	return nil
}

func (f FileContentSource) MarshalJSON() ([]byte, error) {
	switch {
	case f.Inline != nil:
		return json.Marshal(struct {
			Source string `json:"source"`
			*FileContent
		}{Source: "content", FileContent: f.Inline})
	case f.Remote != nil:
		return json.Marshal(struct {
			Source string `json:"source"`
			*RemoteFileContent
		}{Source: "url", RemoteFileContent: f.Remote})
	}
	return []byte("null"), nil
}

// IssueEBLToolRequest is the validated input of the issue_ebl tool.
type IssueEBLToolRequest struct {
	RequesterBUID string                   `json:"requester_bu_id"`
	FileContent   FileContentSource        `json:"file_content"`
	BLNumber      string                   `json:"bl_number"`
	BLDocType     BillOfLadingDocumentType `json:"bl_doc_type"`
	POL           Location                 `json:"pol"`
	POD           Location                 `json:"pod"`
	Shipper       string                   `json:"shipper"`       // DID of the shipper BU
	Consignee     string                   `json:"consignee"`     // DID of the consignee BU
	ReleaseAgent  string                   `json:"release_agent"` // DID of the release agent BU
	Draft         *bool                    `json:"draft"`

	ToOrder        *bool    `json:"to_order,omitempty"`
	ETA            string   `json:"eta,omitempty"` // ISO 8601 date, e.g. 2024-06-01
	Endorsee       string   `json:"endorsee,omitempty"`
	NotifyParties  []string `json:"notify_parties,omitempty"` // Max 3 DIDs.
	Note           string   `json:"note,omitempty"`
	EncryptContent bool     `json:"encrypt_content,omitempty"`
}

// IssueEBLToolResponse confirms creation of an eBL.
type IssueEBLToolResponse struct {
	ID      string `json:"id"`      // Unique ID of the created eBL.
	Version int64  `json:"version"` // Initial version of the created eBL (usually 1).
	Holder  string `json:"holder"`  // DID of the current holder of the created eBL.
}

// ListEBLsToolRequest is the validated input of the list_ebls tool.
// Limit is a pointer so an omitted limit is distinguishable from an explicit
// zero; the default is applied after decoding.
type ListEBLsToolRequest struct {
	RequesterBUID string            `json:"requester_bu_id"`
	Status        EBLStatusCategory `json:"status"`
	Keyword       string            `json:"keyword,omitempty"`
	Offset        int               `json:"offset"`
	Limit         *int              `json:"limit"`
	IncludeReport bool              `json:"include_report"`
}

// EBLSummary is the flat client-facing view of one bill of lading record,
// derived per call from the latest qualifying lifecycle event.
type EBLSummary struct {
	ID           string                   `json:"id"`
	Version      int64                    `json:"version"`
	BLNumber     string                   `json:"blNumber"`
	BLDocType    BillOfLadingDocumentType `json:"blDocType"`
	ToOrder      bool                     `json:"toOrder"`
	POL          Location                 `json:"pol"`
	POD          Location                 `json:"pod"`
	Issuer       string                   `json:"issuer"`
	Shipper      string                   `json:"shipper"`
	Consignee    string                   `json:"consignee"`
	ReleaseAgent string                   `json:"releaseAgent"`
	Endorsee     string                   `json:"endorsee,omitempty"`
}

type EBLStatusReport struct {
	ActionNeeded int `json:"action_needed"`
	Upcoming     int `json:"upcoming"`
	Sent         int `json:"sent"`
	Archive      int `json:"archive"`
}

type ListEBLsToolResponse struct {
	Total  int              `json:"total"`
	EBLs   []EBLSummary     `json:"ebls"`
	Report *EBLStatusReport `json:"report,omitempty"`
}

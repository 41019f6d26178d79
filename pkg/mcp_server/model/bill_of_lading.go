package model

// Read-only view of the BU server's event-sourced bill of lading records.
// Only the fields this server extracts are modeled; unknown fields of the
// backend payload are ignored on decode.

type TransportDocumentStatus string
type PartyFunction string

const (
	TransportDocumentStatusDraft  TransportDocumentStatus = "DRAFT"
	TransportDocumentStatusIssued TransportDocumentStatus = "ISSUED"

	// DDSPartyFunction tags the release agent among the "other" document parties.
	DDSPartyFunction PartyFunction = "DDS"
)

type ListBillOfLadingRecord struct {
	Total   int                  `json:"total"`
	Records []BillOfLadingRecord `json:"records"`
	Report  *EBLStatusReport     `json:"report,omitempty"`
}

type BillOfLadingRecord struct {
	BL           *BillOfLadingPack `json:"bl,omitempty"`
	AllowActions []string          `json:"allow_actions,omitempty"`
}

type BillOfLadingPack struct {
	ID           string              `json:"id"`            // Identity of the bill of lading pack
	Version      int64               `json:"version"`       // Version of the bill of lading pack
	ParentHash   string              `json:"parent_hash"`   // SHA512 hash of the previous version of the bill of lading pack
	Events       []BillOfLadingEvent `json:"events"`        // Events of the bill of lading pack
	CurrentOwner string              `json:"current_owner"` // DID of the current owner of the latest bill of lading of the pack.
}

// BillOfLadingEvent is one entry of the append-only lifecycle log. Transfer,
// surrender and other event kinds carry no document snapshot and are opaque
// to this server.
type BillOfLadingEvent struct {
	BillOfLading *BillOfLading `json:"bill_of_lading,omitempty"`
}

type BillOfLading struct {
	BillOfLadingV3 *TransportDocument       `json:"bill_of_lading_v3,omitempty"`
	DocType        BillOfLadingDocumentType `json:"doc_type,omitempty"`
	CreatedBy      string                   `json:"created_by,omitempty"` // DID
	CreatedAt      string                   `json:"created_at,omitempty"`
}

type TransportDocument struct {
	TransportDocumentReference string                  `json:"transportDocumentReference,omitempty"`
	TransportDocumentStatus    TransportDocumentStatus `json:"transportDocumentStatus,omitempty"`
	IsToOrder                  bool                    `json:"isToOrder,omitempty"`
	Transports                 *Transports             `json:"transports,omitempty"`
	DocumentParties            *DocumentParties        `json:"documentParties,omitempty"`
}

type Transports struct {
	PortOfLoading   *Location `json:"portOfLoading,omitempty"`
	PortOfDischarge *Location `json:"portOfDischarge,omitempty"`
}

type DocumentParties struct {
	IssuingParty *Party               `json:"issuingParty,omitempty"`
	Shipper      *Party               `json:"shipper,omitempty"`
	Consignee    *Party               `json:"consignee,omitempty"`
	Endorsee     *Party               `json:"endorsee,omitempty"`
	Other        []OtherDocumentParty `json:"other,omitempty"`
}

type OtherDocumentParty struct {
	Party         *Party        `json:"party,omitempty"`
	PartyFunction PartyFunction `json:"partyFunction,omitempty"`
}

type Party struct {
	PartyName        string            `json:"partyName,omitempty"`
	IdentifyingCodes []IdentifyingCode `json:"identifyingCodes,omitempty"`
}

type IdentifyingCode struct {
	CodeListProvider string `json:"codeListProvider,omitempty"`
	PartyCode        string `json:"partyCode"`
}

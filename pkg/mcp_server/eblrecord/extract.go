// Package eblrecord derives current state from the BU server's event-sourced
// bill of lading records. The event sequence is an append-only log; "current"
// values are always computed from the latest qualifying event, never stored.
package eblrecord

import (
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/model"
	"github.com/samber/lo"
)

// Parties holds the DIDs extracted from a document snapshot. Fields are empty
// when the corresponding party is absent.
type Parties struct {
	Issuer       string
	Shipper      string
	Consignee    string
	Endorsee     string
	ReleaseAgent string
}

// lastEvent scans the event log from the end and returns the most recently
// appended event matching the predicate. Event order is the sole ordering
// signal; no timestamps are compared.
func lastEvent(events []model.BillOfLadingEvent, match func(model.BillOfLadingEvent) bool) *model.BillOfLadingEvent {
	for i := len(events) - 1; i >= 0; i-- {
		if match(events[i]) {
			return &events[i]
		}
	}
	return nil
}

func hasSnapshot(event model.BillOfLadingEvent) bool {
	return event.BillOfLading != nil && event.BillOfLading.BillOfLadingV3 != nil
}

// LatestBillOfLading returns the latest event payload carrying a document
// snapshot, or nil when the record has none.
func LatestBillOfLading(record model.BillOfLadingRecord) *model.BillOfLading {
	if record.BL == nil {
		return nil
	}

	event := lastEvent(record.BL.Events, hasSnapshot)
	if event == nil {
		return nil
	}
	return event.BillOfLading
}

// BLNumber returns the transport document reference of the latest snapshot,
// or an empty string when the record has no snapshot.
func BLNumber(record model.BillOfLadingRecord) string {
	bl := LatestBillOfLading(record)
	if bl == nil {
		return ""
	}
	return bl.BillOfLadingV3.TransportDocumentReference
}

// EBLParties extracts the document parties of a record. With excludeDraft,
// only the latest event whose snapshot is in ISSUED status is considered, so
// draft party data never leaks into issued-state views. Without it, the
// latest snapshot wins regardless of status. A record with no qualifying
// event yields empty parties.
func EBLParties(record model.BillOfLadingRecord, excludeDraft bool) Parties {
	if record.BL == nil {
		return Parties{}
	}

	var bl *model.BillOfLading
	if excludeDraft {
		event := lastEvent(record.BL.Events, func(event model.BillOfLadingEvent) bool {
			return hasSnapshot(event) && event.BillOfLading.BillOfLadingV3.TransportDocumentStatus == model.TransportDocumentStatusIssued
		})
		if event != nil {
			bl = event.BillOfLading
		}
	} else {
		bl = LatestBillOfLading(record)
	}

	if bl == nil || bl.BillOfLadingV3.DocumentParties == nil {
		return Parties{}
	}

	parties := bl.BillOfLadingV3.DocumentParties
	releaser, _ := lo.Find(parties.Other, func(p model.OtherDocumentParty) bool {
		return p.PartyFunction == model.DDSPartyFunction
	})

	return Parties{
		Issuer:       partyCode(parties.IssuingParty),
		Shipper:      partyCode(parties.Shipper),
		Consignee:    partyCode(parties.Consignee),
		Endorsee:     partyCode(parties.Endorsee),
		ReleaseAgent: partyCode(releaser.Party),
	}
}

// partyCode returns the first identifying code of a party, the DID in the BU
// server's encoding.
func partyCode(party *model.Party) string {
	if party == nil || len(party.IdentifyingCodes) == 0 {
		return ""
	}
	return party.IdentifyingCodes[0].PartyCode
}

// Summarize maps a record into the flat client-facing summary. It returns
// (nil, nil) when the record carries no document snapshot; such records are
// skipped by the caller rather than treated as errors. A record without BL
// data is malformed and yields an error.
func Summarize(record model.BillOfLadingRecord) (*model.EBLSummary, error) {
	if record.BL == nil {
		return nil, model.ErrRecordWithoutBL
	}

	bl := LatestBillOfLading(record)
	if bl == nil {
		return nil, nil
	}
	td := bl.BillOfLadingV3

	version := record.BL.Version
	if version == 0 {
		version = 1
	}

	summary := &model.EBLSummary{
		ID:        record.BL.ID,
		Version:   version,
		BLNumber:  td.TransportDocumentReference,
		BLDocType: model.HouseBillOfLading,
		ToOrder:   td.IsToOrder,
	}
	if bl.DocType != "" {
		summary.BLDocType = bl.DocType
	}

	if td.Transports != nil {
		if pol := td.Transports.PortOfLoading; pol != nil {
			summary.POL = *pol
		}
		if pod := td.Transports.PortOfDischarge; pod != nil {
			summary.POD = *pod
		}
	}

	parties := EBLParties(record, true)
	summary.Issuer = parties.Issuer
	summary.Shipper = parties.Shipper
	summary.Consignee = parties.Consignee
	summary.ReleaseAgent = parties.ReleaseAgent
	summary.Endorsee = parties.Endorsee

	return summary, nil
}

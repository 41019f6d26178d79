package tool

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/goccy/go-json"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/model"
	"github.com/samber/lo"
)

// FieldError is one rejected field of a tool call. Path is the JSON path of
// the field, e.g. "pol.locationName".
type FieldError struct {
	Path    string
	Message string
}

// ValidationError carries every rejected field of a tool call so the caller
// can fix all of them in one round trip.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	lines := lo.Map(e.Fields, func(f FieldError, _ int) string {
		if f.Path == "" {
			return f.Message
		}
		return f.Path + ": " + f.Message
	})
	return strings.Join(lines, "\n")
}

func (e *ValidationError) Unwrap() error {
	return model.ErrInvalidParameter
}

// newValidationError flattens the nested error map returned by
// validation.ValidateStruct into sorted (path, message) pairs.
func newValidationError(err error) *ValidationError {
	vErr := &ValidationError{}
	collectFieldErrors("", err, &vErr.Fields)
	sort.Slice(vErr.Fields, func(i, j int) bool { return vErr.Fields[i].Path < vErr.Fields[j].Path })
	return vErr
}

func collectFieldErrors(prefix string, err error, out *[]FieldError) {
	var errs validation.Errors
	if errors.As(err, &errs) {
		for key, fieldErr := range errs {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			collectFieldErrors(path, fieldErr, out)
		}
		return
	}
	*out = append(*out, FieldError{Path: prefix, Message: err.Error()})
}

// decodeToolArgs round-trips the raw argument map through JSON into the typed
// request struct. Type mismatches are reported as validation errors instead
// of opaque decode failures.
func decodeToolArgs(args map[string]any, out any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return &ValidationError{Fields: []FieldError{{Message: err.Error()}}}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &ValidationError{Fields: []FieldError{{
				Path:    typeErr.Field,
				Message: fmt.Sprintf("must be a valid %s", typeErr.Type),
			}}}
		}
		return &ValidationError{Fields: []FieldError{{Message: err.Error()}}}
	}
	return nil
}

// LocationRule requires both the name and the UN/LOCODE of a location.
type LocationRule struct{}

func (r LocationRule) Validate(value interface{}) error {
	loc, ok := value.(model.Location)
	if !ok {
		return fmt.Errorf("must be a location object, got %T", value)
	}
	return validation.ValidateStruct(&loc,
		validation.Field(&loc.LocationName, validation.Required),
		validation.Field(&loc.UNLocCode, validation.Required),
	)
}

// FileContentRule validates the file reference union. Exactly one of the
// inline and remote variants must be populated.
type FileContentRule struct{}

func (r FileContentRule) Validate(value interface{}) error {
	src, ok := value.(model.FileContentSource)
	if !ok {
		return fmt.Errorf("must be a file content object, got %T", value)
	}
	switch {
	case src.Inline != nil && src.Remote != nil:
		return errors.New("content and url sources are mutually exclusive")
	case src.Inline != nil:
		return validation.ValidateStruct(src.Inline,
			validation.Field(&src.Inline.Name, validation.Required),
			validation.Field(&src.Inline.Type, validation.Required),
			validation.Field(&src.Inline.Content, validation.Required),
		)
	case src.Remote != nil:
		return validation.ValidateStruct(src.Remote,
			validation.Field(&src.Remote.URL, validation.Required, is.URL),
		)
	}
	return errors.New("source must be \"content\" or \"url\"")
}

func ValidateIssueEBLToolRequest(req model.IssueEBLToolRequest) error {
	issuing := req.Draft != nil && !*req.Draft
	negotiable := issuing && req.ToOrder != nil && *req.ToOrder

	err := validation.ValidateStruct(&req,
		validation.Field(&req.RequesterBUID, validation.Required),
		validation.Field(&req.FileContent, validation.Required, FileContentRule{}),
		validation.Field(&req.BLNumber, validation.Required),
		validation.Field(&req.BLDocType, validation.Required, validation.In(model.MasterBillOfLading, model.HouseBillOfLading)),
		validation.Field(&req.POL, validation.Required, LocationRule{}),
		validation.Field(&req.POD, validation.Required, LocationRule{}),
		validation.Field(&req.Shipper, validation.Required),
		validation.Field(&req.Consignee, validation.Required),
		validation.Field(&req.ReleaseAgent, validation.Required),
		validation.Field(&req.Draft, validation.NotNil),
		validation.Field(&req.ETA, validation.Date("2006-01-02")),
		validation.Field(&req.Endorsee, validation.Required.When(negotiable).Error("required when issuing a to-order eBL")),
		validation.Field(&req.NotifyParties,
			validation.Required.When(negotiable).Error("required when issuing a to-order eBL"),
			validation.Length(0, 3),
			validation.Each(validation.Required),
		),
	)
	if err != nil {
		return newValidationError(err)
	}
	return nil
}

func ValidateListEBLsToolRequest(req model.ListEBLsToolRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.RequesterBUID, validation.Required),
		validation.Field(&req.Status,
			validation.Required,
			validation.In(model.EBLStatusActionNeeded, model.EBLStatusUpcoming, model.EBLStatusSent, model.EBLStatusArchive),
		),
		validation.Field(&req.Offset, validation.Min(0)),
		validation.Field(&req.Limit, validation.Required, validation.Min(1), validation.Max(100)),
	)
	if err != nil {
		return newValidationError(err)
	}
	return nil
}

package model

type BusinessUnitStatus string
type BusinessUnitAuthenticationStatus string

const (
	BusinessUnitStatusActive   BusinessUnitStatus = "active"
	BusinessUnitStatusInactive BusinessUnitStatus = "inactive"

	BusinessUnitAuthenticationStatusActive  BusinessUnitAuthenticationStatus = "active"
	BusinessUnitAuthenticationStatusRevoked BusinessUnitAuthenticationStatus = "revoked"
)

// BusinessUnit is the BU server's view of a business unit. The DID is kept as
// an opaque string on this side of the wire.
type BusinessUnit struct {
	ID      string             `json:"id"`      // Unique DID of a BusinessUnit.
	Version int64              `json:"version"` // Version of the BusinessUnit.
	Status  BusinessUnitStatus `json:"status"`  // Status of the BusinessUnit.
	Name    string             `json:"name"`    // Name of the BusinessUnit.

	Authentications []BusinessUnitAuthentication `json:"authentications"` // Authentication records of the BusinessUnit.
}

type BusinessUnitAuthentication struct {
	ID      string                           `json:"id"`      // Unique ID of the authentication.
	Version int64                            `json:"version"` // Version of the authentication.
	Status  BusinessUnitAuthenticationStatus `json:"status"`  // Status of the authentication.

	CreatedAt int64 `json:"created_at"` // Unix Time (in second) when the authentication was created.
	RevokedAt int64 `json:"revoked_at"` // Unix Time (in second) when the authentication was revoked.
}

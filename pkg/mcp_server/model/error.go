package model

import (
	"errors"
	"fmt"
)

var ErrInvalidParameter = errors.New("")     // Base error for invalid tool input
var ErrFileFetchError = errors.New("")       // Base error for remote file retrieval
var ErrAuthResolutionError = errors.New("")  // Base error for authentication resolution
var ErrBackendError = errors.New("")         // Base error for backend API responses
var ErrEmptyResponseError = errors.New("")   // Base error for success responses with no body
var ErrUnknownToolError = errors.New("")     // Base error for unregistered tool names

// Authentication resolution errors. Lookup failures and missing active
// authentications surface the same user-facing text but stay distinguishable
// with errors.Is.
var ErrNoActiveAuthentication = fmt.Errorf("no active authentication%w", ErrAuthResolutionError)
var ErrAuthenticationLookupFailed = fmt.Errorf("business unit lookup failed%w", ErrAuthResolutionError)

// Backend errors
var ErrEmptyResponse = fmt.Errorf("no data returned from backend%w", ErrEmptyResponseError)
var ErrRecordWithoutBL = fmt.Errorf("bill of lading record does not contain BL data%w", ErrBackendError)

// Package errors provides the standardized error taxonomy for the dashboard core.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ==========================
// 1. Error Codes
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// A raw record is missing required fields or carries wrong types; the
	// record is excluded from the normalized collection, never coerced.
	ErrCodeSchemaMismatch ErrorCode = "SCHEMA_MISMATCH"

	// A backend call failed or returned non-2xx; the response body is
	// surfaced verbatim and in-memory state is left unchanged.
	ErrCodeNetworkFailure ErrorCode = "NETWORK_FAILURE"

	// A key is absent from both the active and the fallback catalog. The
	// resolver recovers by returning the key itself; this code only shows
	// up in logs and metrics.
	ErrCodeTranslationMiss ErrorCode = "TRANSLATION_MISS"

	ErrCodeCatalogInvalid  ErrorCode = "CATALOG_INVALID"
	ErrCodeDraftInvalid    ErrorCode = "DRAFT_INVALID"
	ErrCodePreferenceStore ErrorCode = "PREFERENCE_STORE_FAILED"
	ErrCodeRecordNotFound  ErrorCode = "RECORD_NOT_FOUND"
	ErrCodeConfigInvalid   ErrorCode = "CONFIG_INVALID"
)

// ==========================
// 2. Error Type
// ==========================

// DashboardError is a structured application error. Recoverable means the
// page can keep rendering with degraded output; nothing in the core is fatal.
type DashboardError struct {
	Code        ErrorCode `json:"code"`
	Message     string    `json:"message"`
	Details     string    `json:"details,omitempty"`
	Recoverable bool      `json:"recoverable"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e *DashboardError) Error() string {
	return fmt.Sprintf("DashboardError[%s]: %s", e.Code, e.Message)
}

// CodeOf extracts the ErrorCode from err, or "" when err is not a DashboardError.
func CodeOf(err error) ErrorCode {
	var de *DashboardError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// ==========================
// 3. Constructors
// ==========================

// NewSchemaMismatchError marks a raw record rejected at the normalizer boundary.
func NewSchemaMismatchError(recordType, details string) *DashboardError {
	return &DashboardError{
		Code:        ErrCodeSchemaMismatch,
		Message:     fmt.Sprintf("Record does not match the '%s' schema", recordType),
		Details:     details,
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewNetworkFailureError wraps a failed backend call. body holds the raw
// response body for non-2xx replies and must be surfaced verbatim.
func NewNetworkFailureError(endpoint string, status int, body string) *DashboardError {
	return &DashboardError{
		Code:        ErrCodeNetworkFailure,
		Message:     body,
		Details:     fmt.Sprintf("endpoint: %s, status: %d", endpoint, status),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewNetworkTransportError wraps a backend call that never produced a response.
func NewNetworkTransportError(endpoint string, err error) *DashboardError {
	return &DashboardError{
		Code:        ErrCodeNetworkFailure,
		Message:     err.Error(),
		Details:     fmt.Sprintf("endpoint: %s", endpoint),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewTranslationMissError records a key absent from active and fallback catalogs.
func NewTranslationMissError(key, language string) *DashboardError {
	return &DashboardError{
		Code:        ErrCodeTranslationMiss,
		Message:     fmt.Sprintf("No translation for key '%s'", key),
		Details:     fmt.Sprintf("language: %s", language),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewCatalogInvalidError marks a translation catalog that failed to load.
func NewCatalogInvalidError(language string, err error) *DashboardError {
	return &DashboardError{
		Code:        ErrCodeCatalogInvalid,
		Message:     fmt.Sprintf("Translation catalog '%s' is invalid", language),
		Details:     err.Error(),
		Recoverable: false,
		Timestamp:   time.Now().UTC(),
	}
}

// NewDraftInvalidError marks a draft that failed validation before submit.
func NewDraftInvalidError(draftType, details string) *DashboardError {
	return &DashboardError{
		Code:        ErrCodeDraftInvalid,
		Message:     fmt.Sprintf("Draft '%s' failed validation", draftType),
		Details:     details,
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewPreferenceStoreError wraps a failed preference read or write.
func NewPreferenceStoreError(op string, err error) *DashboardError {
	return &DashboardError{
		Code:        ErrCodePreferenceStore,
		Message:     "Preference store operation failed",
		Details:     fmt.Sprintf("op: %s, error: %s", op, err.Error()),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewRecordNotFoundError marks a lookup for an id absent from a collection.
func NewRecordNotFoundError(recordType, id string) *DashboardError {
	return &DashboardError{
		Code:        ErrCodeRecordNotFound,
		Message:     fmt.Sprintf("No %s record with id '%s'", recordType, id),
		Recoverable: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewConfigInvalidError marks configuration that failed validation at startup.
func NewConfigInvalidError(details string) *DashboardError {
	return &DashboardError{
		Code:        ErrCodeConfigInvalid,
		Message:     "Invalid configuration",
		Details:     details,
		Recoverable: false,
		Timestamp:   time.Now().UTC(),
	}
}

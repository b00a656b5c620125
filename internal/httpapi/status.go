package httpapi

import (
	"errors"
	"net/http"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// statusFor maps an rpgerr.Code to the HTTP status the surface responds
// with. Every error response carries {error, code}; rpgerr itself is
// transport-agnostic, this table is httpapi's own.
func statusFor(code rpgerr.Code) int {
	switch code {
	case rpgerr.CodeInvalidArgument:
		return http.StatusBadRequest
	case rpgerr.CodeNotAllowed:
		return http.StatusForbidden
	case rpgerr.CodeNotFound:
		return http.StatusNotFound
	case rpgerr.CodeAlreadyExists, rpgerr.CodeConflictingState, rpgerr.CodeInvalidState:
		return http.StatusConflict
	case rpgerr.CodePrerequisiteNotMet, rpgerr.CodeInvalidTarget, rpgerr.CodeOutOfRange,
		rpgerr.CodeTimingRestriction, rpgerr.CodeCooldownActive, rpgerr.CodeImmune,
		rpgerr.CodeBlocked, rpgerr.CodeInterrupted:
		return http.StatusUnprocessableEntity
	case rpgerr.CodeResourceExhausted, rpgerr.CodeCapacityExceeded:
		return http.StatusTooManyRequests
	case rpgerr.CodeCanceled:
		return 499 // client closed request, matching nginx's convention
	case rpgerr.CodeExternalOutage:
		return http.StatusBadGateway
	case rpgerr.CodeLedgerFailure, rpgerr.CodeInternal, rpgerr.CodeUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the shape every failed request responds with.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// codeOf extracts the rpgerr.Code from err, defaulting to CodeUnknown for
// an error that didn't originate in rpgerr (should not happen in practice:
// every internal package returns *rpgerr.Error).
func codeOf(err error) rpgerr.Code {
	var rpgErr *rpgerr.Error
	if errors.As(err, &rpgErr) {
		return rpgErr.Code
	}
	return rpgerr.CodeUnknown
}

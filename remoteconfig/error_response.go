// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adil Murzabekov

package remoteconfig

import (
	"encoding/json"
	"strings"
)

// fcmErrorType is the type URI identifying the vendor error detail entry the
// service nests inside a generic error envelope.
const fcmErrorType = "type.googleapis.com/google.firebase.fcm.v1.FcmError"

// serviceErrorCodes maps errorCode strings reported by the service to typed
// [ErrorCode] values. The table is initialised once and never mutated.
// Unrecognised codes map to nothing: callers receive "no code", never a
// default guess.
var serviceErrorCodes = map[string]ErrorCode{
	"INTERNAL": ErrorCodeInternal,
}

// serviceErrorResponse is the parse target for one HTTP error body of the
// shape {"error": {"status", "message", "details": [...]}}.
//
// The envelope is kept as a loose map so that each accessor degrades
// independently: a wrong-typed or missing field yields an absent result for
// that accessor only, never an error.
type serviceErrorResponse struct {
	Error map[string]any `json:"error"`
}

// safeParse decodes body into a [serviceErrorResponse]. Empty, non-JSON, or
// otherwise malformed bodies yield a zero-value model whose accessors all
// report absent; parse failures are never surfaced to the caller.
func safeParse(body string) *serviceErrorResponse {
	if strings.TrimSpace(body) == "" {
		return &serviceErrorResponse{}
	}

	var parsed serviceErrorResponse
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		// The server may have responded with a non-JSON payload.
		return &serviceErrorResponse{}
	}

	return &parsed
}

// Status returns the error.status string field. The second result is false
// when the error object is missing or the field is absent or not a string.
func (r *serviceErrorResponse) Status() (string, bool) {
	s, ok := r.Error["status"].(string)
	return s, ok
}

// Message returns the error.message string field. The second result is false
// when the error object is missing or the field is absent or not a string.
func (r *serviceErrorResponse) Message() (string, bool) {
	m, ok := r.Error["message"].(string)
	return m, ok
}

// ErrorCode scans error.details for the first entry whose @type matches
// [fcmErrorType] and maps its errorCode field through [serviceErrorCodes].
// The first matching-typed entry decides the outcome; later duplicates are
// not consulted. The second result is false when the details list is missing
// or not list-shaped, no matching-typed entry exists, or the code is
// unrecognised.
func (r *serviceErrorResponse) ErrorCode() (ErrorCode, bool) {
	details, ok := r.Error["details"].([]any)
	if !ok {
		return "", false
	}

	for _, detail := range details {
		entry, ok := detail.(map[string]any)
		if !ok {
			continue
		}
		if entry["@type"] != fcmErrorType {
			continue
		}

		code, _ := entry["errorCode"].(string)
		mapped, ok := serviceErrorCodes[code]
		return mapped, ok
	}

	return "", false
}

package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed      = "method_not_allowed"
	codeNotFound              = "not_found"
	codeInvalidRequestBody    = "invalid_request_body"
	codeIdentityNotFound      = "identity_not_found"
	codeEventNotFound         = "event_not_found"
	codePricingOptionNotFound = "pricing_option_not_found"
	codeReservationNotFound   = "reservation_not_found"
	codeTitleRequired         = "event_title_required"
	codePricingRequired       = "pricing_option_required"
	codeInvalidPrice          = "invalid_price"
	codeUnauthenticated       = "unauthenticated"
	codeNotOrganizer          = "not_organizer"
	codeForbidden             = "forbidden"
	codeDuplicateReservation  = "duplicate_reservation"
	codeOrganizerOwnEvent     = "organizer_own_event"
	codeInternalError         = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/ocandela/eventpass/internal/domain"
)

func handleReserve(w http.ResponseWriter, r *http.Request, svc EventCatalog, session SessionReader, eventID string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	identity, ok := session.Current()
	if !ok {
		writeError(w, http.StatusUnauthorized, codeUnauthenticated, "not logged in")
		return
	}

	var req reserveRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	if req.PricingOptionID == "" {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "pricing_option_id is required")
		return
	}

	reservation, err := svc.Reserve(r.Context(), eventID, req.PricingOptionID, identity)
	if err != nil {
		switch err {
		case domain.ErrEventNotFound:
			writeError(w, http.StatusNotFound, codeEventNotFound, err.Error())
		case domain.ErrPricingOptionNotFound:
			writeError(w, http.StatusNotFound, codePricingOptionNotFound, err.Error())
		case domain.ErrDuplicateReservation:
			writeError(w, http.StatusConflict, codeDuplicateReservation, err.Error())
		case domain.ErrOrganizerOwnEvent:
			writeError(w, http.StatusConflict, codeOrganizerOwnEvent, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		}
		return
	}
	writeJSON(w, http.StatusCreated, toReservationResponse(reservation))
}

func handleConfirmPayment(w http.ResponseWriter, r *http.Request, svc EventCatalog, session SessionReader, eventID, reservationID string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		return
	}

	if _, ok := session.Current(); !ok {
		writeError(w, http.StatusUnauthorized, codeUnauthenticated, "not logged in")
		return
	}

	payload, err := svc.ConfirmPayment(r.Context(), eventID, reservationID)
	if err != nil {
		switch err {
		case domain.ErrEventNotFound:
			writeError(w, http.StatusNotFound, codeEventNotFound, err.Error())
		case domain.ErrReservationNotFound:
			writeError(w, http.StatusNotFound, codeReservationNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, ticketResponse{TicketCode: payload})
}

type reserveRequest struct {
	PricingOptionID string `json:"pricing_option_id"`
}

type ticketResponse struct {
	TicketCode string `json:"ticket_code"`
}

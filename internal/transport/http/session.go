package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ocandela/eventpass/internal/domain"
)

// SessionStore is the minimal interface the session endpoints need.
type SessionStore interface {
	Login(ctx context.Context, email, password string) (domain.Identity, error)
	Logout()
	Current() (domain.Identity, bool)
}

// SessionReader exposes the current identity to handlers that only need to
// know who is calling.
type SessionReader interface {
	Current() (domain.Identity, bool)
}

// HandleSession returns an HTTP handler for login (POST), current identity
// (GET) and logout (DELETE).
func HandleSession(svc SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req loginRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			// The password travels in the request for fidelity with the
			// checkout flow but is never verified.
			identity, err := svc.Login(r.Context(), req.Email, req.Password)
			if err != nil {
				switch err {
				case domain.ErrIdentityNotFound:
					writeError(w, http.StatusNotFound, codeIdentityNotFound, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				}
				return
			}
			writeJSON(w, http.StatusOK, toIdentityResponse(identity))
			return
		case http.MethodGet:
			identity, ok := svc.Current()
			if !ok {
				writeError(w, http.StatusUnauthorized, codeUnauthenticated, "not logged in")
				return
			}
			writeJSON(w, http.StatusOK, toIdentityResponse(identity))
			return
		case http.MethodDelete:
			svc.Logout()
			w.WriteHeader(http.StatusNoContent)
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

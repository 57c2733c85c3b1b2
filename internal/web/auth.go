package web

import (
	"net/http"
)

// Login exchanges a username and password for a session token. Failures
// are throttled per source address.
func Login(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		token, err := h.service.Login(r.Context(), h.ClientIP(r), body.Username, body.Password)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token":      token,
			"token_type": "bearer",
		})
	}
}

// Me reports the authenticated subject, mostly so clients can check a
// stored token.
func Me(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := GetSubject(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"username": subject})
	}
}

func ChangePassword(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := GetSubject(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var body struct {
			CurrentPassword string `json:"current_password"`
			NewPassword     string `json:"new_password"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := h.service.ChangePassword(r.Context(), subject, body.CurrentPassword, body.NewPassword); err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"detail": "password updated"})
	}
}

// The web package exposes the application as a JSON API: public reads and
// comment submission under /api, token-protected administration under
// /admin.
package web

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/sidereusnuntius/zblog/internal/config"
	"github.com/sidereusnuntius/zblog/internal/db"
	"github.com/sidereusnuntius/zblog/internal/service"
)

type Handler struct {
	Config  config.Configuration
	service service.Service
}

func New(config config.Configuration, service service.Service) *Handler {
	return &Handler{
		Config:  config,
		service: service,
	}
}

type ErrorResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// GetCode maps a service or storage error onto an HTTP status.
func GetCode(err error) int {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, db.ErrConflict), errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, db.ErrInternal):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// respondError translates err into a JSON error response. Throttled
// requests become a 429 with a Retry-After header; internal errors keep
// their details out of the response body.
func respondError(w http.ResponseWriter, err error) {
	var limited *service.RateLimitedError
	if errors.As(err, &limited) {
		seconds := int(limited.RetryAfter.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
		writeJSON(w, http.StatusTooManyRequests, ErrorResponse{
			Error:      "rate limit exceeded",
			RetryAfter: seconds,
		})
		return
	}

	code := GetCode(err)
	if code == http.StatusInternalServerError {
		writeError(w, code, "internal error")
		return
	}
	writeError(w, code, err.Error())
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("malformed JSON body")
	}
	return nil
}

// ClientIP derives the source address used as the rate limit key. Proxy
// headers are spoofable, so they are honored only when the deployment says
// a trusted proxy sets them.
func (h *Handler) ClientIP(r *http.Request) string {
	if h.Config.TrustProxyHeaders {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			return strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return xri
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// pagination reads the 1-indexed page and page_size query parameters. The
// service clamps them; zero means "use the default".
func pagination(r *http.Request) (page, size int) {
	return queryInt(r, "page", 0), queryInt(r, "page_size", 0)
}

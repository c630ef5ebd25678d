package cep

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Handler exposes postal-code lookups over HTTP for the interactive
// record-creation screens.
type Handler struct {
	client *Client
}

// NewHTTPHandler wraps the lookup client.
func NewHTTPHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// Lookup resolves ?code= into address parts as JSON. Unknown codes answer
// 404, malformed ones 400.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := digitsOnly(r.URL.Query().Get("code"))
	addr, err := h.client.Lookup(r.Context(), code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, fmt.Sprintf("postal code %s not found", code), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(addr)
}

func digitsOnly(value string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(value) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

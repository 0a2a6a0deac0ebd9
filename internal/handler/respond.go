package handler

import (
	"encoding/json"
	"net/http"

	"salon-management-api/internal/store"
)

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("encode response", "err", err)
	}
}

// fail writes the client-facing error shape. Storage details never reach
// the client; callers log them first.
func (h *Handler) fail(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]any{"success": false, "message": message})
}

// storageError logs the real failure and answers with a generic 500.
func (h *Handler) storageError(w http.ResponseWriter, op string, err error) {
	h.log.Error(op, "err", err)
	h.fail(w, http.StatusInternalServerError, "internal error")
}

// decode parses a JSON body into dst. A malformed body is a generic bad
// request; field validation is the caller's job.
func decode(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func (h *Handler) deleteByID(w http.ResponseWriter, r *http.Request, collection string) {
	if err := h.store.Delete(collection, r.PathValue("id")); err != nil {
		h.storageError(w, "delete "+collection, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// withoutPassword copies a user record minus the credential.
func withoutPassword(rec store.Record) store.Record {
	out := make(store.Record, len(rec))
	for k, v := range rec {
		if k == "password" {
			continue
		}
		out[k] = v
	}
	return out
}

package handler

import (
	"errors"
	"net/http"

	"salon-management-api/internal/model"
	"salon-management-api/internal/store"
)

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	for _, rec := range h.store.ReadAll(Users) {
		if rec.ID() == id {
			h.writeJSON(w, http.StatusOK, withoutPassword(rec))
			return
		}
	}
	h.fail(w, http.StatusNotFound, "Kullanıcı bulunamadı")
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateUserRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.store.Update(Users, r.PathValue("id"), req.Record())
	if errors.Is(err, store.ErrNotFound) {
		h.fail(w, http.StatusNotFound, "Kullanıcı bulunamadı")
		return
	}
	if err != nil {
		h.storageError(w, "update user", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    withoutPassword(rec),
	})
}

package handler

import (
	"net/http"

	"salon-management-api/internal/model"
)

func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.ReadAll(Contacts))
}

func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req model.CreateContactRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.store.Insert(Contacts, req.Record())
	if err != nil {
		h.storageError(w, "insert contact", err)
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, Contacts)
}

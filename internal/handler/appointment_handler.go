package handler

import (
	"fmt"
	"net/http"

	"salon-management-api/internal/model"
)

func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.ReadAll(Appointments))
}

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAppointmentRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.store.Insert(Appointments, req.Record())
	if err != nil {
		h.storageError(w, "insert appointment", err)
		return
	}

	// fire-and-forget; the response does not depend on the outcome
	if phone, _ := rec["contactPhone"].(string); phone != "" {
		name, _ := rec["contactName"].(string)
		date, _ := rec["date"].(string)
		msg := fmt.Sprintf("Sayın %s, %s tarihli randevunuz oluşturulmuştur.", name, date)
		h.notifier.Dispatch(phone, msg)
	}

	h.writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, Appointments)
}

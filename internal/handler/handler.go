// Package handler exposes the record store over JSON-over-HTTP.
package handler

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"salon-management-api/internal/notify"
	"salon-management-api/internal/store"
)

// Collection names.
const (
	Contacts     = "contacts"
	Appointments = "appointments"
	Tasks        = "tasks"
	Users        = "users"
)

type Handler struct {
	store    *store.Store
	notifier *notify.Dispatcher
	log      *log.Logger
}

func New(st *store.Store, notifier *notify.Dispatcher, logger *log.Logger) *Handler {
	return &Handler{store: st, notifier: notifier, log: logger}
}

// Routes maps every endpoint onto the store 1:1.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("GET /api/contacts", h.ListContacts)
	mux.HandleFunc("POST /api/contacts", h.CreateContact)
	mux.HandleFunc("DELETE /api/contacts/{id}", h.DeleteContact)

	mux.HandleFunc("GET /api/appointments", h.ListAppointments)
	mux.HandleFunc("POST /api/appointments", h.CreateAppointment)
	mux.HandleFunc("DELETE /api/appointments/{id}", h.DeleteAppointment)

	mux.HandleFunc("GET /api/tasks", h.ListTasks)
	mux.HandleFunc("POST /api/tasks", h.CreateTask)
	mux.HandleFunc("PUT /api/tasks/{id}", h.UpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", h.DeleteTask)

	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/register", h.Register)

	mux.HandleFunc("GET /api/users/{id}", h.GetUser)
	mux.HandleFunc("PUT /api/users/{id}", h.UpdateUser)

	return mux
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

package handler

import (
	"net/http"
	"time"

	"salon-management-api/internal/model"
)

// Login scans the user collection for an exact username+password match.
// Passwords are kept in cleartext so this is a plain equality check; see
// the note on model.User. The failure message never reveals whether the
// username exists.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	for _, rec := range h.store.ReadAll(Users) {
		username, _ := rec["username"].(string)
		password, _ := rec["password"].(string)
		if username == req.Username && password == req.Password {
			h.writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"user":    withoutPassword(rec),
			})
			return
		}
	}
	h.fail(w, http.StatusUnauthorized, "Kullanıcı adı veya şifre hatalı")
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	for _, rec := range h.store.ReadAll(Users) {
		if username, _ := rec["username"].(string); username == req.Username {
			h.fail(w, http.StatusConflict, "Bu kullanıcı adı zaten kullanılıyor")
			return
		}
	}

	rec, err := h.store.Insert(Users, req.Record(time.Now()))
	if err != nil {
		h.storageError(w, "insert user", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    withoutPassword(rec),
	})
}

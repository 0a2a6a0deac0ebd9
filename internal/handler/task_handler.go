package handler

import (
	"errors"
	"net/http"
	"time"

	"salon-management-api/internal/model"
	"salon-management-api/internal/store"
)

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.ReadAll(Tasks))
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTaskRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.store.Insert(Tasks, req.Record(time.Now()))
	if err != nil {
		h.storageError(w, "insert task", err)
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}

// UpdateTask merges any valid subset of task fields onto the record, nulls
// included, so clearing a due date or unassigning a customer round-trips.
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := decode(r, &body); err != nil {
		h.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	partial, err := model.TaskSchema.ValidatePartial(body)
	if err != nil {
		h.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.store.Update(Tasks, r.PathValue("id"), partial)
	if errors.Is(err, store.ErrNotFound) {
		h.fail(w, http.StatusNotFound, "task not found")
		return
	}
	if err != nil {
		h.storageError(w, "update task", err)
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, Tasks)
}

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/memoapp/memo/internal/store"
)

// entityHandler serves one collection's CRUD endpoints. The five
// collections share identical mechanics, so the router wires one handler
// per collection with the typed store facade bound in.
type entityHandler struct {
	name   string
	list   func(ctx context.Context) (any, error)
	create func(ctx context.Context, fields map[string]any) (any, error)
	update func(ctx context.Context, id string, fields map[string]any) (any, error)
	remove func(ctx context.Context, id string) error
}

// List handles GET /api/{collection}.
func (h *entityHandler) List(w http.ResponseWriter, r *http.Request) {
	entities, err := h.list(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list "+h.name)
		return
	}
	jsonResponse(w, http.StatusOK, entities)
}

// Create handles POST /api/{collection}. The body is the entity's fields;
// the store generates the id and creation timestamp.
func (h *entityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := decodeJSON(r, &fields); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entity, err := h.create(r.Context(), fields)
	if errors.Is(err, store.ErrInvalidInput) {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create "+h.name)
		return
	}
	jsonResponse(w, http.StatusCreated, entity)
}

// Update handles PUT /api/{collection}/{id}. Fields in the body overwrite
// the stored values; omitted fields are preserved (merge, not replace).
func (h *entityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var fields map[string]any
	if err := decodeJSON(r, &fields); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entity, err := h.update(r.Context(), id, fields)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, h.name+" not found")
		return
	}
	if errors.Is(err, store.ErrInvalidInput) {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update "+h.name)
		return
	}
	jsonResponse(w, http.StatusOK, entity)
}

// Delete handles DELETE /api/{collection}/{id}. Idempotent: deleting an
// unknown id still succeeds.
func (h *entityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.remove(r.Context(), r.PathValue("id")); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete "+h.name)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

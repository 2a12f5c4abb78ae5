package rest

import (
	"net/http"

	"github.com/leohylee/tes-companion/internal/entities"
)

func (h *Handler) getOverland(w http.ResponseWriter, r *http.Request) {
	state, err := h.ServiceProvider.OverlandService.GetState(r.Context(), OwnerFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) saveOverland(w http.ResponseWriter, r *http.Request) {
	var state entities.OverlandState
	if err := decodeBody(r, &state); err != nil {
		writeError(w, err)
		return
	}

	saved, err := h.ServiceProvider.OverlandService.SaveState(r.Context(), OwnerFromContext(r.Context()), &state)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

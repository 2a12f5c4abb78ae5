package rest

import (
	"net/http"

	"github.com/leohylee/tes-companion/internal/entities"
)

func (h *Handler) listCharacters(w http.ResponseWriter, r *http.Request) {
	list, err := h.ServiceProvider.CharacterService.ListCharacters(r.Context(), OwnerFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) createCharacter(w http.ResponseWriter, r *http.Request) {
	var input entities.CharacterInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, err)
		return
	}

	char, err := h.ServiceProvider.CharacterService.CreateCharacter(r.Context(), OwnerFromContext(r.Context()), &input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, char)
}

func (h *Handler) getCharacter(w http.ResponseWriter, r *http.Request) {
	char, err := h.ServiceProvider.CharacterService.GetCharacter(r.Context(), OwnerFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, char)
}

func (h *Handler) updateCharacter(w http.ResponseWriter, r *http.Request) {
	var patch entities.CharacterPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}

	char, err := h.ServiceProvider.CharacterService.UpdateCharacter(r.Context(), OwnerFromContext(r.Context()), r.PathValue("id"), &patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, char)
}

func (h *Handler) deleteCharacter(w http.ResponseWriter, r *http.Request) {
	if err := h.ServiceProvider.CharacterService.DeleteCharacter(r.Context(), OwnerFromContext(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageBody{Message: "Character deleted"})
}

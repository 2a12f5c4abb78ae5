package rest

import (
	"net/http"

	"github.com/leohylee/tes-companion/internal/entities"
)

// CreateCampaignRequest is the body of POST /api/campaigns
type CreateCampaignRequest struct {
	CharacterIDs []string `json:"characterIds"`
}

func (h *Handler) listCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.ServiceProvider.CampaignService.ListCampaigns(r.Context(), OwnerFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) createCampaign(w http.ResponseWriter, r *http.Request) {
	var req CreateCampaignRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.ServiceProvider.CampaignService.CreateCampaign(r.Context(), OwnerFromContext(r.Context()), req.CharacterIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) getCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.ServiceProvider.CampaignService.GetCampaign(r.Context(), OwnerFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) updateCampaign(w http.ResponseWriter, r *http.Request) {
	var patch entities.CampaignPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.ServiceProvider.CampaignService.UpdateCampaign(r.Context(), OwnerFromContext(r.Context()), r.PathValue("id"), &patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) deleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.ServiceProvider.CampaignService.DeleteCampaign(r.Context(), OwnerFromContext(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageBody{Message: "Campaign deleted"})
}

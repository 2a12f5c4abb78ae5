package rest

import (
	"net/http"

	"github.com/leohylee/tes-companion/internal/entities"
	"github.com/leohylee/tes-companion/internal/provinces"
)

// MarkerTypeInfo describes how one marker type is drawn
type MarkerTypeInfo struct {
	Type entities.MarkerType `json:"type"`
	entities.MarkerStyle
}

// MapsResponse is the province catalogue served to clients
type MapsResponse struct {
	Maps        []provinces.MapInfo   `json:"maps"`
	TokenIcons  []provinces.TokenIcon `json:"tokenIcons"`
	DayColors   []string              `json:"dayColors"`
	MarkerTypes []MarkerTypeInfo      `json:"markerTypes"`
}

var markerTypes = []entities.MarkerType{
	entities.MarkerVisited,
	entities.MarkerQuest,
	entities.MarkerPOI,
	entities.MarkerDanger,
	entities.MarkerCamp,
}

// listMaps is public; the catalogue holds no user data
func (h *Handler) listMaps(w http.ResponseWriter, _ *http.Request) {
	resp := MapsResponse{
		Maps:       h.catalog.Maps,
		TokenIcons: h.catalog.TokenIcons,
		DayColors:  h.catalog.DayColors,
	}
	for _, t := range markerTypes {
		resp.MarkerTypes = append(resp.MarkerTypes, MarkerTypeInfo{Type: t, MarkerStyle: t.Style()})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Package rest exposes the companion services over a JSON HTTP API. Every
// /api route is scoped to the caller named in the X-Companion-User header.
package rest

import (
	"fmt"
	"net/http"

	"github.com/leohylee/tes-companion/internal/provinces"
	"github.com/leohylee/tes-companion/internal/services"
)

// HandlerConfig holds what the API needs to serve requests
type HandlerConfig struct {
	ServiceProvider *services.Provider // Required
	Catalog         *provinces.Catalog // Optional, embedded catalogue if nil
}

// Handler serves the REST API
type Handler struct {
	ServiceProvider *services.Provider
	catalog         *provinces.Catalog
}

// NewHandler creates a new REST handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.ServiceProvider == nil {
		panic("service provider is required")
	}

	catalog := cfg.Catalog
	if catalog == nil {
		var err error
		if catalog, err = provinces.Default(); err != nil {
			panic(fmt.Sprintf("embedded province catalog is invalid: %v", err))
		}
	}

	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
		catalog:         catalog,
	}
}

// Routes returns the API's http.Handler
func (h *Handler) Routes() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/characters", h.listCharacters)
	api.HandleFunc("POST /api/characters", h.createCharacter)
	api.HandleFunc("GET /api/characters/{id}", h.getCharacter)
	api.HandleFunc("PUT /api/characters/{id}", h.updateCharacter)
	api.HandleFunc("DELETE /api/characters/{id}", h.deleteCharacter)

	api.HandleFunc("GET /api/campaigns", h.listCampaigns)
	api.HandleFunc("POST /api/campaigns", h.createCampaign)
	api.HandleFunc("GET /api/campaigns/{id}", h.getCampaign)
	api.HandleFunc("PUT /api/campaigns/{id}", h.updateCampaign)
	api.HandleFunc("DELETE /api/campaigns/{id}", h.deleteCampaign)

	api.HandleFunc("GET /api/overland", h.getOverland)
	api.HandleFunc("PUT /api/overland", h.saveOverland)

	mux := http.NewServeMux()
	mux.Handle("/api/", RequireUser(api))
	mux.HandleFunc("GET /api/maps", h.listMaps)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return RecoverMiddleware(mux)
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const vaultIDParam = "vaultID"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.withHashing)

		r.Post("/api/vaults", h.createVault)
		r.Get("/api/vaults", h.listVaults)
		r.Get("/api/vaults/{vaultID}", h.getVault)
		r.Put("/api/vaults/{vaultID}", h.updateVault)
		r.Delete("/api/vaults/{vaultID}", h.deleteVault)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

package http

import (
	"github.com/MKhiriev/zero-vault/internal/logger"
	"github.com/MKhiriev/zero-vault/internal/service"
	"github.com/MKhiriev/zero-vault/internal/utils"
)

type Handler struct {
	services *service.Services
	hasher   *utils.Hasher

	logger *logger.Logger
}

// NewHandler returns a Handler. With an empty hashKey request bodies are
// not checked for the HashSHA256 header.
func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	if hashKey != "" {
		h.hasher = utils.NewHasher(hashKey)
	}

	logger.Info().Bool("hashing", h.hasher != nil).Msg("http handler created")
	return h
}

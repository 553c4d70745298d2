package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/zero-vault/internal/app"
	"github.com/MKhiriev/zero-vault/internal/logger"
	"github.com/MKhiriev/zero-vault/internal/service"
	"github.com/MKhiriev/zero-vault/internal/store"
	"github.com/MKhiriev/zero-vault/internal/validators"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order. Validation errors come first because
// they are wrapped together with service.ErrInvalidDataProvided.
var errorResponses = []errorResponse{
	{validators.ErrEmptyName, http.StatusBadRequest, app.MsgEmptyVaultName},
	{validators.ErrEmptySecret, http.StatusBadRequest, app.MsgEmptyEncryptedSecret},
	{validators.ErrInvalidSalt, http.StatusBadRequest, app.MsgInvalidSalt},
	{validators.ErrInvalidEnvelope, http.StatusBadRequest, app.MsgInvalidEnvelope},
	{validators.ErrSaltIsImmutable, http.StatusBadRequest, app.MsgSaltIsImmutable},
	{validators.ErrNoFieldsToUpdate, http.StatusBadRequest, app.MsgNothingToUpdate},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{store.ErrVaultNotFound, http.StatusNotFound, app.MsgVaultNotFound},
	{store.ErrVaultAlreadyExists, http.StatusConflict, app.MsgVaultAlreadyExists},
}

func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError answers with the status and message mapped from err. Server
// faults are logged as errors, client mistakes as warnings.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg(message)

	http.Error(w, message, status)
}

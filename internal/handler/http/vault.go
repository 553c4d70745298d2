// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/zero-vault/internal/app"
	"github.com/MKhiriev/zero-vault/internal/logger"
	"github.com/MKhiriev/zero-vault/internal/utils"
	"github.com/MKhiriev/zero-vault/models"
)

// maxBodySize bounds a create or update request. An envelope of a few
// kilobytes is already a very long secret.
const maxBodySize = 1 << 20

func (h *Handler) createVault(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateVaultRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := h.services.VaultService.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "*Handler.createVault", err)
		return
	}

	log.Debug().Str("vault_id", created.VaultID).Msg("vault stored")
	if _, err = utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createVault").Msg("failed to write response")
	}
}

func (h *Handler) listVaults(w http.ResponseWriter, r *http.Request) {
	vaults, err := h.services.VaultService.List(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.listVaults", err)
		return
	}
	if vaults == nil {
		vaults = []models.Vault{}
	}

	if _, err = utils.WriteJSON(w, models.VaultList{Vaults: vaults}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listVaults").Msg("failed to write response")
	}
}

func (h *Handler) getVault(w http.ResponseWriter, r *http.Request) {
	vault, err := h.services.VaultService.Get(r.Context(), chi.URLParam(r, vaultIDParam))
	if err != nil {
		h.writeError(w, r, "*Handler.getVault", err)
		return
	}

	if _, err = utils.WriteJSON(w, vault, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getVault").Msg("failed to write response")
	}
}

func (h *Handler) updateVault(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateVaultRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.services.VaultService.Update(r.Context(), chi.URLParam(r, vaultIDParam), req)
	if err != nil {
		h.writeError(w, r, "*Handler.updateVault", err)
		return
	}

	if _, err = utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateVault").Msg("failed to write response")
	}
}

func (h *Handler) deleteVault(w http.ResponseWriter, r *http.Request) {
	if err := h.services.VaultService.Delete(r.Context(), chi.URLParam(r, vaultIDParam)); err != nil {
		h.writeError(w, r, "*Handler.deleteVault", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeBody reads a JSON request into dst. On failure it has already
// answered 400 and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "decodeBody").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/zero-vault/internal/config"
	"github.com/MKhiriev/zero-vault/internal/logger"
	"github.com/MKhiriev/zero-vault/internal/utils"
	"github.com/MKhiriev/zero-vault/models"
)

const (
	vaultsPath  = "/api/vaults"
	vaultPath   = "/api/vaults/{vaultID}"
	versionPath = "/api/version"
)

type httpVaultAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher
	token  string

	logger *logger.Logger
}

// NewHTTPVaultAdapter returns a [VaultAdapter] for the server at
// cfg.HTTPAddress. A scheme-less address is taken as plain http.
func NewHTTPVaultAdapter(cfg config.ClientAdapter, logger *logger.Logger) (VaultAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().
		WithBaseURL(baseURL).
		WithTimeout(cfg.RequestTimeout).
		WithRetries(cfg.Retries)

	a := &httpVaultAdapter{
		client: client,
		token:  strings.TrimSpace(cfg.Token),
		logger: logger,
	}
	if cfg.HashKey != "" {
		a.hasher = utils.NewHasher(cfg.HashKey)
	}
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpVaultAdapter) Create(ctx context.Context, req models.CreateVaultRequest) (models.Vault, error) {
	var created models.Vault

	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return models.Vault{}, err
	}
	resp, err := r.SetResult(&created).
		Post(vaultsPath)
	if err != nil {
		return models.Vault{}, requestError("create vault request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Vault{}, err
	}

	return created, nil
}

func (h *httpVaultAdapter) Get(ctx context.Context, vaultID string) (models.Vault, error) {
	var vault models.Vault

	resp, err := h.request(ctx).
		SetPathParam("vaultID", vaultID).
		SetResult(&vault).
		Get(vaultPath)
	if err != nil {
		return models.Vault{}, requestError("get vault request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Vault{}, err
	}

	return vault, nil
}

func (h *httpVaultAdapter) List(ctx context.Context) ([]models.Vault, error) {
	var list models.VaultList

	resp, err := h.request(ctx).
		SetResult(&list).
		Get(vaultsPath)
	if err != nil {
		return nil, requestError("list vaults request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if list.Vaults == nil {
		list.Vaults = []models.Vault{}
	}
	return list.Vaults, nil
}

func (h *httpVaultAdapter) Update(ctx context.Context, vaultID string, req models.UpdateVaultRequest) (models.Vault, error) {
	var updated models.Vault

	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return models.Vault{}, err
	}
	resp, err := r.SetPathParam("vaultID", vaultID).
		SetResult(&updated).
		Put(vaultPath)
	if err != nil {
		return models.Vault{}, requestError("update vault request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Vault{}, err
	}

	return updated, nil
}

func (h *httpVaultAdapter) Delete(ctx context.Context, vaultID string) error {
	resp, err := h.request(ctx).
		SetPathParam("vaultID", vaultID).
		Delete(vaultPath)
	if err != nil {
		return requestError("delete vault request", err)
	}

	return mapHTTPError(resp)
}

func (h *httpVaultAdapter) ServerVersion(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.request(ctx).
		SetResult(&info).
		Get(versionPath)
	if err != nil {
		return models.AppBuildInfo{}, requestError("server version request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}

func (h *httpVaultAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}

// jsonRequest marshals body up front so the integrity header covers exactly
// the bytes that are sent.
func (h *httpVaultAdapter) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.hasher != nil {
		req.SetHeader(utils.HashHeader, h.hasher.HashHex(payload))
	}
	return req, nil
}

package handler

import (
	"net/http"

	"github.com/propertymatcher/listings-relay/internal/config"
	"github.com/propertymatcher/listings-relay/internal/relay"
)

// APIVersion is the reported API version string.
const APIVersion = "1.2.0"

// ServiceName identifies this service in health responses.
const ServiceName = "propertymatcher"

// HealthHandler handles the health and diagnostic endpoints.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Health handles GET /
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": ServiceName,
		"docs":    "/debug/config",
	})
}

// DebugConfig handles GET /debug/config. It reports which credentials are
// configured as booleans only; secret values are never echoed.
func (h *HealthHandler) DebugConfig(w http.ResponseWriter, r *http.Request) {
	var idPrefix, runsURL interface{}
	if h.cfg.AgentID != "" {
		prefix := h.cfg.AgentID
		if len(prefix) > 3 {
			prefix = prefix[:3]
		}
		idPrefix = prefix
		runsURL = relay.RunsURL(h.cfg.UpstreamBase, h.cfg.AgentID)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"api_version":      APIVersion,
		"id_prefix":        idPrefix,
		"runs_url":         runsURL,
		"has_upstream_key": h.cfg.UpstreamAPIKey != "",
		"has_caller_key":   h.cfg.CallerKey != "",
		"has_project":      h.cfg.ProjectID != "",
		"has_organization": h.cfg.OrganizationID != "",
	})
}

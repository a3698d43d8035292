package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/propertymatcher/listings-relay/internal/config"
	"github.com/propertymatcher/listings-relay/internal/model"
	"github.com/propertymatcher/listings-relay/internal/relay"
	"github.com/propertymatcher/listings-relay/pkg/logger"
)

// ListingsHandler handles the listings relay endpoint.
type ListingsHandler struct {
	cfg     *config.Config
	invoker *relay.Invoker
	logger  *logger.Logger
}

// NewListingsHandler creates a new listings handler.
func NewListingsHandler(cfg *config.Config, invoker *relay.Invoker, log *logger.Logger) *ListingsHandler {
	return &ListingsHandler{
		cfg:     cfg,
		invoker: invoker,
		logger:  log,
	}
}

// Run handles POST /agent/listings
func (h *ListingsHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req model.ListingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Criteria == nil {
		writeError(w, http.StatusBadRequest, "criteria is required")
		return
	}
	req.Normalize()

	if h.cfg.UpstreamAPIKey == "" {
		writeError(w, http.StatusInternalServerError, "OPENAI_API_KEY is not set")
		return
	}
	if h.cfg.AgentID == "" {
		writeError(w, http.StatusInternalServerError, "LISTINGS_AGENT_ID is not set")
		return
	}

	output, err := h.invoker.Run(r.Context(), *req.Limit, *req.Criteria)
	if err != nil {
		var upstreamErr *relay.UpstreamError
		if errors.As(err, &upstreamErr) {
			// Upstream rejections pass through with the exact status and body
			// so callers see the upstream's own diagnostics.
			contentType := upstreamErr.ContentType
			if contentType == "" {
				contentType = "application/json"
			}
			w.Header().Set("Content-Type", contentType)
			w.WriteHeader(upstreamErr.StatusCode)
			w.Write(upstreamErr.Body)
			return
		}

		h.logger.Error("agent run failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "agent request failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, model.ListingsResponse{
		ConversationID: req.ConversationID,
		Criteria:       *req.Criteria,
		AgentOutput:    output,
	})
}

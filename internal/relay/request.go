package relay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/propertymatcher/listings-relay/internal/config"
	"github.com/propertymatcher/listings-relay/internal/model"
)

// RunRequest is the outbound body for one upstream run-creation call.
type RunRequest struct {
	InputAsText    string               `json:"input_as_text"`
	InputVariables model.SearchCriteria `json:"input_variables"`
}

// Target is the resolved upstream endpoint for one call, computed fresh from
// the configuration snapshot.
type Target struct {
	URL     string
	Headers http.Header
}

// ResolveTarget computes the run-creation URL and header set.
func ResolveTarget(cfg *config.Config) Target {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+cfg.UpstreamAPIKey)
	h.Set("Content-Type", "application/json")
	// Required by the Agents/Workflows API generation in use.
	h.Set("OpenAI-Beta", "agents=v1")
	if cfg.ProjectID != "" {
		h.Set("OpenAI-Project", cfg.ProjectID)
	}
	if cfg.OrganizationID != "" {
		h.Set("OpenAI-Organization", cfg.OrganizationID)
	}
	if cfg.UserAgent != "" {
		h.Set("User-Agent", cfg.UserAgent)
	}
	return Target{
		URL:     RunsURL(cfg.UpstreamBase, cfg.AgentID),
		Headers: h,
	}
}

// BuildRunRequest renders the instruction text and variables payload for a
// run. The criteria rendering preserves field order and non-ASCII characters.
func BuildRunRequest(limit int, criteria model.SearchCriteria) (*RunRequest, error) {
	rendered, err := marshalCriteria(criteria)
	if err != nil {
		return nil, fmt.Errorf("render criteria: %w", err)
	}
	return &RunRequest{
		InputAsText:    fmt.Sprintf("Find up to %d Québec listings based on: %s", limit, rendered),
		InputVariables: criteria,
	}, nil
}

func marshalCriteria(criteria model.SearchCriteria) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(criteria); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

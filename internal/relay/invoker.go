package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/propertymatcher/listings-relay/internal/config"
	"github.com/propertymatcher/listings-relay/internal/model"
	"github.com/propertymatcher/listings-relay/pkg/logger"
	"github.com/propertymatcher/listings-relay/pkg/metrics"
)

// UpstreamError carries the upstream's exact status and body so callers can
// pass both through verbatim.
type UpstreamError struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// Invoker dispatches run-creation calls. One inbound call maps to exactly one
// outbound call; there are no retries and no queuing.
type Invoker struct {
	cfg    *config.Config
	client *http.Client
	logger *logger.Logger
}

// NewInvoker creates an invoker bounded by the configured upstream timeout.
func NewInvoker(cfg *config.Config, log *logger.Logger) *Invoker {
	return &Invoker{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.UpstreamTimeout,
		},
		logger: log,
	}
}

// Run issues one run-creation call and returns the decoded upstream payload
// unchanged. Non-success upstream statuses surface as *UpstreamError; every
// other failure (network, timeout, malformed payload) is a transport error.
func (i *Invoker) Run(ctx context.Context, limit int, criteria model.SearchCriteria) (json.RawMessage, error) {
	collection := TargetCollection(i.cfg.AgentID)

	runReq, err := BuildRunRequest(limit, criteria)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(runReq)
	if err != nil {
		return nil, fmt.Errorf("encode run request: %w", err)
	}

	target := ResolveTarget(i.cfg)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header = target.Headers.Clone()

	i.logger.Info("calling upstream runs endpoint",
		zap.String("url", target.URL),
		zap.String("collection", collection),
	)

	start := time.Now()
	resp, err := i.client.Do(req)
	if err != nil {
		metrics.RecordUpstreamCall(collection, "transport_error", time.Since(start).Seconds())
		return nil, fmt.Errorf("upstream call failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordUpstreamCall(collection, "transport_error", time.Since(start).Seconds())
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.RecordUpstreamCall(collection, "upstream_error", time.Since(start).Seconds())
		i.logger.Warn("upstream rejected run",
			zap.Int("status", resp.StatusCode),
			zap.String("collection", collection),
		)
		return nil, &UpstreamError{
			StatusCode:  resp.StatusCode,
			ContentType: resp.Header.Get("Content-Type"),
			Body:        body,
		}
	}

	if !json.Valid(body) {
		metrics.RecordUpstreamCall(collection, "transport_error", time.Since(start).Seconds())
		return nil, fmt.Errorf("decode upstream response: invalid JSON payload")
	}

	metrics.RecordUpstreamCall(collection, "succeeded", time.Since(start).Seconds())
	return json.RawMessage(body), nil
}

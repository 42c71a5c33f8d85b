package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diwise/alert-analysis/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

// AlertAnalysisClient talks to an alert-analysis instance over its http api.
type AlertAnalysisClient interface {
	Groups(ctx context.Context, timeFilter string) (types.GroupedAlerts, error)
	Details(ctx context.Context, alertID string) (types.AlertDetails, error)
}

var ErrAlertNotFound = fmt.Errorf("alert not found")

var tracer = otel.Tracer("alert-analysis-client")

type alertAnalysisClient struct {
	url        string
	httpClient http.Client
}

func New(alertAnalysisURL string) AlertAnalysisClient {
	return &alertAnalysisClient{
		url: alertAnalysisURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *alertAnalysisClient) Groups(ctx context.Context, timeFilter string) (types.GroupedAlerts, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-alert-groups")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	result := types.GroupedAlerts{}

	url := c.url + "/api/v0/alerts"
	if timeFilter != "" {
		url = url + "?timeFilter=" + timeFilter
	}

	b, err := c.get(ctx, url)
	if err != nil {
		return result, err
	}

	err = json.Unmarshal(b, &result)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return result, err
	}

	return result, nil
}

func (c *alertAnalysisClient) Details(ctx context.Context, alertID string) (types.AlertDetails, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-alert-details")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	result := types.AlertDetails{}

	b, err := c.get(ctx, c.url+"/api/v0/alerts/"+alertID)
	if err != nil {
		return result, err
	}

	err = json.Unmarshal(b, &result)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return result, err
	}

	return result, nil
}

func (c *alertAnalysisClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve alert information: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrAlertNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status code %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return b, nil
}

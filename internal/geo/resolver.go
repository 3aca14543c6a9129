package geo

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mzhuravlev/phrasebot/internal/config"
	"github.com/mzhuravlev/phrasebot/internal/logger"
)

type httpResolver struct {
	client *resty.Client

	logger *logger.Logger
}

// timeZoneResponse is the subset of the coordinate endpoint's payload we
// consume.
type timeZoneResponse struct {
	TimeZone string `json:"timeZone"`
}

// NewHTTPResolver constructs a [Resolver] backed by a timeapi.io-compatible
// HTTP API.
func NewHTTPResolver(cfg config.Geo, logger *logger.Logger) Resolver {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://timeapi.io"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpResolver{client: cli, logger: logger}
}

func (r *httpResolver) Resolve(ctx context.Context, latitude, longitude float64) (string, error) {
	var payload timeZoneResponse

	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("latitude", strconv.FormatFloat(latitude, 'f', -1, 64)).
		SetQueryParam("longitude", strconv.FormatFloat(longitude, 'f', -1, 64)).
		SetResult(&payload).
		Get("/api/timezone/coordinate")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrResolutionFailed, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", ErrResolutionFailed, resp.StatusCode())
	}

	if payload.TimeZone == "" {
		logger.FromContext(ctx).Warn().
			Str("func", "Resolve").
			Float64("latitude", latitude).
			Float64("longitude", longitude).
			Msg("timezone api returned empty zone")
		return "", ErrTimeZoneNotFound
	}

	return payload.TimeZone, nil
}

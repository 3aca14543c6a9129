package config

import "time"

// Fallbacks applied after merging all sources, before validation.
const (
	defaultHTTPAddress    = "0.0.0.0:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultCacheTTL       = time.Hour
	defaultCacheCleanup   = 10 * time.Minute
	defaultGeoBaseURL     = "https://timeapi.io"
	defaultGeoTimeout     = 10 * time.Second
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Cache.DefaultTTL == 0 {
		cfg.Cache.DefaultTTL = defaultCacheTTL
	}
	if cfg.Cache.CleanupInterval == 0 {
		cfg.Cache.CleanupInterval = defaultCacheCleanup
	}
	if cfg.Geo.BaseURL == "" {
		cfg.Geo.BaseURL = defaultGeoBaseURL
	}
	if cfg.Geo.Timeout == 0 {
		cfg.Geo.Timeout = defaultGeoTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Telegram.Token == "" {
		return ErrInvalidTelegramConfigs
	}

	if cfg.Telegram.WebhookURL == "" || cfg.Telegram.WebhookSecret == "" {
		return ErrInvalidWebhookConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

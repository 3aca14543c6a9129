package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidTelegramConfigs indicates missing bot credentials.
	ErrInvalidTelegramConfigs = errors.New("invalid telegram configuration")
	// ErrInvalidWebhookConfigs indicates incomplete webhook settings
	// (for example, missing public URL or path secret).
	ErrInvalidWebhookConfigs = errors.New("invalid webhook configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)

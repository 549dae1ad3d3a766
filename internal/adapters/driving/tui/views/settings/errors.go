package settings

import "errors"

// ErrNoSettingsService is returned when no settings service is configured.
var ErrNoSettingsService = errors.New("settings service not configured")

package constants

import "errors"

// Transport errors.
var (
	ErrRelativeURL   = errors.New("relative request URL and no origin configured")
	ErrInvalidOrigin = errors.New("origin must be an absolute URL")
	ErrNoRequest     = errors.New("request is required")
	ErrTokenExpired  = errors.New("access token has expired")
	ErrInvalidJWT    = errors.New("invalid JWT format")
)

// CLI errors.
var (
	ErrNoBaseConfigured   = errors.New("no store base configured, use --base or 'castore config set base <url>'")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrMissingConfigValue = errors.New("missing configuration value")
	ErrRecordRequired     = errors.New("record is required (use --data, --file, or stdin)")
	ErrNotAnObject        = errors.New("record must be a JSON object")
	ErrUnknownEntityType  = errors.New("unknown entity type")
	ErrInvalidQueryArg    = errors.New("query arguments must be key=value")
	ErrRequestFailed      = errors.New("request failed")
	ErrNoNATSURL          = errors.New("no NATS URL configured, use --nats-url")
	ErrValidationFailures = errors.New("records failed validation")
)

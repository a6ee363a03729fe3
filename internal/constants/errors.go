package constants

import "errors"

// Configuration errors.
var (
	ErrAPIKeyRequired   = errors.New("API key is required, use 'teamwork login' or --api-key")
	ErrBaseURLRequired  = errors.New("base URL or domain is required, use --base-url or --domain")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrEmptyAPIKey      = errors.New("no API key entered")
)

// Command input errors.
var (
	ErrInvalidQueryPair = errors.New("query parameters must be in key=value form")
	ErrInvalidJSONData  = errors.New("--data must be a JSON object")
	ErrNoSelectMatch    = errors.New("--select path matched nothing")
)

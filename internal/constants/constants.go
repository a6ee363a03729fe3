package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as connecting to NATS.
	ShortHTTPTimeout = 10 * time.Second
)

// Authentication.
const (
	// PlaceholderPassword is sent as the basic auth password; Teamwork only checks the API key.
	PlaceholderPassword = "X"

	// APIKeyVisiblePrefix is how many characters of an API key survive masking.
	APIKeyVisiblePrefix = 4

	// MaskedSecret replaces the hidden part of a secret.
	MaskedSecret = "***"

	// DefaultScheme is prepended to a bare Teamwork domain.
	DefaultScheme = "https://"
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusMultipleChoices is the first status outside the success range.
	HTTPStatusMultipleChoices = 300

	// HTTPStatusUnauthorized is returned when the API key is rejected.
	HTTPStatusUnauthorized = 401

	// HTTPStatusInternalServerError represents server errors.
	HTTPStatusInternalServerError = 500
)

// Resource limits.
const (
	// MaxStatusLength is the longest user status Teamwork accepts.
	MaxStatusLength = 160
)

// Call events.
const (
	// DefaultEventSubject is the NATS subject call events are published on.
	DefaultEventSubject = "teamwork.calls"
)

// Flag values.
const (
	// Yes is the affirmative flag value the API expects.
	Yes = "yes"

	// No is the negative flag value the API expects.
	No = "no"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)

// Validation and limits.
const (
	// MinimumArgumentCount is the minimum number of command line arguments.
	MinimumArgumentCount = 2

	// StringTruncationLength is the default length for truncating strings.
	StringTruncationLength = 80

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"
)

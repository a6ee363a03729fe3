package teamwork_test

import (
	"testing"
	"time"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		var config *teamwork.Config
		require.ErrorIs(t, config.Validate(), teamwork.ErrConfigRequired)
	})

	t.Run("base URL", func(t *testing.T) {
		t.Parallel()

		config := &teamwork.Config{APIKey: "twp_key", BaseURL: "https://acme.teamwork.com"}
		require.NoError(t, config.Validate())
	})

	t.Run("domain", func(t *testing.T) {
		t.Parallel()

		config := &teamwork.Config{APIKey: "twp_key", Domain: "acme.teamwork.com"}
		require.NoError(t, config.Validate())
	})

	t.Run("reports every problem", func(t *testing.T) {
		t.Parallel()

		config := &teamwork.Config{HTTPTimeout: -time.Second, RequestsPerMinute: -1}

		err := config.Validate()
		require.Error(t, err)

		var merr *multierror.Error
		require.ErrorAs(t, err, &merr)
		assert.Len(t, merr.Errors, 4)
		require.ErrorIs(t, err, teamwork.ErrAPIKeyRequired)
		require.ErrorIs(t, err, teamwork.ErrBaseURLRequired)
		require.ErrorIs(t, err, teamwork.ErrNegativeTimeout)
		require.ErrorIs(t, err, teamwork.ErrNegativeRateLimit)
	})

	t.Run("invalid base URLs", func(t *testing.T) {
		t.Parallel()

		for _, baseURL := range []string{"acme.teamwork.com", "ftp://acme.teamwork.com", "https://", "://bad"} {
			config := &teamwork.Config{APIKey: "twp_key", BaseURL: baseURL}
			require.ErrorIs(t, config.Validate(), teamwork.ErrInvalidBaseURL, baseURL)
		}
	})
}

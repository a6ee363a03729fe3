package commands

import (
	"fmt"
	"os"

	"github.com/nats-io/nats.go"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/teamwork/internal/constants"
	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/fivetwenty-io/teamwork/pkg/twclient"
)

// ClientSettings are the inputs needed to build an API client.
type ClientSettings struct {
	APIKey            string
	BaseURL           string
	Domain            string
	Verbose           bool
	RequestsPerMinute int
	NATSURL           string
	NATSSubject       string
}

// settingsFromViper reads flags, TEAMWORK_* variables and the config file.
func settingsFromViper() ClientSettings {
	return ClientSettings{
		APIKey:            viper.GetString("api_key"),
		BaseURL:           viper.GetString("base_url"),
		Domain:            viper.GetString("domain"),
		Verbose:           viper.GetBool("verbose"),
		RequestsPerMinute: viper.GetInt("requests_per_minute"),
		NATSURL:           viper.GetString("nats_url"),
		NATSSubject:       viper.GetString("nats_subject"),
	}
}

// CreateClient builds a client from the current CLI configuration. The
// returned cleanup closes the call event connection, if any.
func CreateClient() (teamwork.Client, func(), error) {
	return newClient(settingsFromViper())
}

func newClient(settings ClientSettings) (teamwork.Client, func(), error) {
	if settings.APIKey == "" {
		return nil, nil, constants.ErrAPIKeyRequired
	}

	if settings.BaseURL == "" && settings.Domain == "" {
		return nil, nil, constants.ErrBaseURLRequired
	}

	config := &teamwork.Config{
		APIKey:            settings.APIKey,
		BaseURL:           settings.BaseURL,
		Domain:            settings.Domain,
		RequestsPerMinute: settings.RequestsPerMinute,
		Interceptors:      teamwork.NewInterceptorChain(),
	}

	var logger teamwork.Logger
	if settings.Verbose {
		logger = teamwork.NewLogger("teamwork", "debug", os.Stderr)
		config.Logger = logger
		config.Debug = true
	}

	cleanup := func() {}

	if settings.NATSURL != "" {
		conn, err := teamwork.ConnectEvents(settings.NATSURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect call events: %w", err)
		}

		config.Interceptors.AddRequestInterceptor(teamwork.MetricsRequestInterceptor())
		config.Interceptors.AddResponseInterceptor(teamwork.CallEventInterceptor(conn, settings.NATSSubject, logger))

		cleanup = func() { drain(conn) }
	}

	client, err := twclient.New(config)
	if err != nil {
		cleanup()

		return nil, nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, cleanup, nil
}

func drain(conn *nats.Conn) {
	err := conn.Drain()
	if err != nil {
		conn.Close()
	}
}

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client presentation settings.
type ClientApp struct {
	// UI is [UILine] or [UITUI].
	UI string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the chat server.
	HTTPAddress string
	// RequestTimeout is the timeout of every outbound request.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background activity settings.
type ClientWorkers struct {
	// PollInterval is the pause between two inbound polls of a room.
	PollInterval time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Workers ClientWorkers
}

// GetClientConfig loads the merged configuration via [GetStructuredConfig]
// and returns the validated client view of it.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientConfig()
	return clientCfg, clientCfg.validate()
}

// ClientConfig maps the fields relevant to the client runtime.
func (cfg *StructuredConfig) ClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{UI: cfg.App.UI},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{PollInterval: cfg.Workers.PollInterval},
	}
}

package config

import (
	"fmt"
	"os"
)

// ClientConfig is the client-specific view of [StructuredConfig].
type ClientConfig struct {
	// Client contains the API address, key and request timeout.
	Client Client
	// Log contains logging settings.
	Log Log
	// PaymentIDs holds the raw positional arguments naming the payments to fetch.
	PaymentIDs []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config from the same sources as [GetStructuredConfig],
// maps only the fields relevant to the client runtime, and validates the
// resulting [ClientConfig]. Server-only settings are not required.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Client:     cfg.Client,
		Log:        cfg.Log,
		PaymentIDs: cfg.Args,
	}

	return clientCfg, clientCfg.validate()
}

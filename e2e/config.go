package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_RELAY_URL targets a running relay instead of the in-process one
	RelayURL string `envconfig:"E2E_RELAY_URL"`
	// E2E_DEBUG_JSON dumps every received frame
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

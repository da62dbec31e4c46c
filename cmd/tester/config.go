package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	RelayURL string `envconfig:"RELAY_URL" default:"ws://localhost:5000/ws"`
	RoomID   string `envconfig:"ROOM_ID" default:"demo"`
	UserName string `envconfig:"USER_NAME" default:"probe"`
	UserRole string `envconfig:"USER_ROLE" default:"student"`
	PeerID   string `envconfig:"PEER_ID"`
	// REPORT_INTERVAL > 0 sends a report-count every interval
	ReportInterval time.Duration `envconfig:"REPORT_INTERVAL" default:"0s"`
	// COLOURS enables colorized output
	Colours bool `envconfig:"COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

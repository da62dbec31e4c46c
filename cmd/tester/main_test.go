package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_FlagsOverrideEnvironment(t *testing.T) {
	req := require.New(t)
	t.Setenv("ROOM_ID", "from-env")
	t.Setenv("USER_NAME", "Env")
	config, err := LoadConfig()
	req.NoError(err)
	req.Equal("from-env", config.RoomID)

	cmd := newRootCmd(&config)
	req.NoError(cmd.ParseFlags([]string{"--room", "math101", "--report-every", "2s", "--colours=false"}))

	req.Equal("math101", config.RoomID)
	req.Equal("Env", config.UserName)
	req.Equal(2*time.Second, config.ReportInterval)
	req.False(config.Colours)
}

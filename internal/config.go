package internal

import (
	"classroom-relay/infrastructure/ws"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	Host                 string        `env:"HOST,default=0.0.0.0"`
	Port                 int           `env:"PORT,default=5000"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=256"`
	MaxMessageSize       int           `env:"MAX_MESSAGE_SIZE,default=65536"`
	WriteWait            time.Duration `env:"WRITE_WAIT,default=10s"`
	PongWait             time.Duration `env:"PONG_WAIT,default=60s"`
	AllowedOrigins       string        `env:"ALLOWED_ORIGINS,default=*"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=5s"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate rejects values the gateway cannot run with.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.ConnectionBufferSize <= 0 {
		return fmt.Errorf("CONNECTION_BUFFER_SIZE must be positive, got %d", c.ConnectionBufferSize)
	}
	if c.MaxMessageSize <= 0 {
		return fmt.Errorf("MAX_MESSAGE_SIZE must be positive, got %d", c.MaxMessageSize)
	}
	if c.PongWait <= 0 || c.WriteWait <= 0 {
		return fmt.Errorf("PONG_WAIT and WRITE_WAIT must be positive")
	}
	if c.MetricInterval <= 0 {
		return fmt.Errorf("METRIC_INTERVAL must be positive, got %s", c.MetricInterval)
	}
	return nil
}

// GatewayOptions maps the websocket settings.
func (c Config) GatewayOptions() ws.Options {
	origins := lo.FilterMap(strings.Split(c.AllowedOrigins, ","), func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return ws.Options{
		BufferSize:     c.ConnectionBufferSize,
		MaxMessageSize: int64(c.MaxMessageSize),
		WriteWait:      c.WriteWait,
		PongWait:       c.PongWait,
		AllowedOrigins: origins,
	}
}

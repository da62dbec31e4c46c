package ws

import (
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Options struct {
	BufferSize     int
	MaxMessageSize int64
	WriteWait      time.Duration
	PongWait       time.Duration
	AllowedOrigins []string
}

func DefaultOptions() Options {
	return Options{
		BufferSize:     256,
		MaxMessageSize: 64 * 1024,
		WriteWait:      10 * time.Second,
		PongWait:       60 * time.Second,
		AllowedOrigins: []string{"*"},
	}
}

// pingPeriod must stay below PongWait.
func (o Options) pingPeriod() time.Duration {
	return (o.PongWait * 9) / 10
}

func (o Options) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || lo.Contains(o.AllowedOrigins, "*") {
		return true
	}
	return lo.ContainsBy(o.AllowedOrigins, func(allowed string) bool {
		return strings.EqualFold(allowed, origin)
	})
}

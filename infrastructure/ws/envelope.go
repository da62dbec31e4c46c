package ws

import (
	"classroom-relay/domain/event"
	"encoding/json"
)

// Envelope is the frame exchanged with clients in both directions:
// {"event": "join-room", "data": {...}}.
type Envelope struct {
	Event event.Name      `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outbound struct {
	Event event.Name `json:"event"`
	Data  any        `json:"data"`
}

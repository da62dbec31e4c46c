// Package domain contains core concepts of the classroom relay.
// This file defines chat messages.
// Messages are transient: they are stamped, broadcast and forgotten.
package domain

import (
	"time"

	"github.com/google/uuid"
)

const messageTimeLayout = "15:04"

// ChatMessage is the payload of a relayed chat line.
type ChatMessage struct {
	ID     string `json:"id"`
	Sender string `json:"sender"`
	Text   string `json:"text"`
	Time   string `json:"time"`
}

func NewChatMessage(sender, text string, at time.Time) ChatMessage {
	return ChatMessage{
		ID:     uuid.NewString(),
		Sender: sender,
		Text:   text,
		Time:   at.Format(messageTimeLayout),
	}
}

package main

import (
	"classroom-relay/domain"
	"classroom-relay/domain/event"
	"encoding/json"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// roster mirrors the room membership as seen by this client.
type roster struct {
	members []domain.Participant
}

// apply folds a received event into the roster and reports whether the
// membership or a presence flag changed.
func (r *roster) apply(name event.Name, data json.RawMessage) (bool, error) {
	switch name {
	case event.RoomParticipants:
		var members []domain.Participant
		if err := json.Unmarshal(data, &members); err != nil {
			return false, err
		}
		r.members = members
	case event.UserJoined:
		var p domain.Participant
		if err := json.Unmarshal(data, &p); err != nil {
			return false, err
		}
		r.members = append(lo.Reject(r.members, func(m domain.Participant, _ int) bool { return m.ID == p.ID }), p)
	case event.UserLeft:
		var left event.UserLeftPayload
		if err := json.Unmarshal(data, &left); err != nil {
			return false, err
		}
		r.members = lo.Reject(r.members, func(m domain.Participant, _ int) bool { return m.ID == left.ID })
	case event.ParticipantUpdated:
		var delta struct {
			ID        domain.ConnectionID `json:"id"`
			IsMuted   *bool               `json:"isMuted"`
			IsVideoOn *bool               `json:"isVideoOn"`
		}
		if err := json.Unmarshal(data, &delta); err != nil {
			return false, err
		}
		_, idx, found := lo.FindIndexOf(r.members, func(m domain.Participant) bool { return m.ID == delta.ID })
		if !found {
			return false, nil
		}
		if delta.IsMuted != nil {
			r.members[idx].IsMuted = *delta.IsMuted
		}
		if delta.IsVideoOn != nil {
			r.members[idx].IsVideoOn = *delta.IsVideoOn
		}
	default:
		return false, nil
	}
	return true, nil
}

func (r *roster) render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Role", "Peer", "Muted", "Video", "Joined"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, m := range r.members {
		table.Append([]string{
			m.Name,
			string(m.Role),
			m.PeerID,
			strconv.FormatBool(m.IsMuted),
			strconv.FormatBool(m.IsVideoOn),
			m.JoinedAt.Format("15:04:05"),
		})
	}
	table.Render()
}

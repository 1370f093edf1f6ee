package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type JobsUpdatedEvent struct {
	Type      string `json:"type"`
	Source    string `json:"source"`
	Created   int    `json:"created"`
	Updated   int    `json:"updated"`
	Timestamp string `json:"timestamp"`
}

type MatchesUpdatedEvent struct {
	Type      string `json:"type"`
	CVID      string `json:"cv_id"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

// Notifier publishes domain events to every connected websocket client.
// A nil Notifier (or nil hub) is safe and silently discards events.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) JobsUpdated(source string, created, updated int) {
	if n == nil {
		return
	}
	n.publish(JobsUpdatedEvent{
		Type:      "jobs_updated",
		Source:    source,
		Created:   created,
		Updated:   updated,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *Notifier) MatchesUpdated(cvID uuid.UUID, count int) {
	if n == nil {
		return
	}
	n.publish(MatchesUpdatedEvent{
		Type:      "matches_updated",
		CVID:      cvID.String(),
		Count:     count,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *Notifier) publish(evt any) {
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}

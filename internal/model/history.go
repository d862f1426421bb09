package model

import "time"

// HistoryEvent tags each audit entry with the lifecycle event it records.
type HistoryEvent string

const (
	EventCreated   HistoryEvent = "created"
	EventForwarded HistoryEvent = "forwarded"
	EventClosed    HistoryEvent = "closed"
	EventReopened  HistoryEvent = "reopened"
	EventReceived  HistoryEvent = "received"
)

// History is one immutable audit entry in a record's provenance trail.
// Entries are append-only and ordered by creation time; the actor field that
// is populated depends on the event kind. The current department of a record
// is the destination of its most recent entry (or the origin, when the record
// was never forwarded).
type History struct {
	ID              int64        `json:"id"`
	RecordID        int64        `json:"record_id"`
	Event           HistoryEvent `json:"event"`
	CreatedBy       string       `json:"created_by,omitempty"`
	ForwardedBy     string       `json:"forwarded_by,omitempty"`
	ClosedBy        string       `json:"closed_by,omitempty"`
	ReopenedBy      string       `json:"reopened_by,omitempty"`
	ReceivedBy      string       `json:"received_by,omitempty"`
	OriginID        int64        `json:"origin_id,omitempty"`
	OriginName      string       `json:"origin_name,omitempty"`
	DestinationID   int64        `json:"destination_id,omitempty"`
	DestinationName string       `json:"destination_name,omitempty"`
	Reason          string       `json:"reason,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

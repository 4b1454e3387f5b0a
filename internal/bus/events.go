package bus

import (
	"encoding/json"
	"time"
)

// Event types carried on the bus, mirrored by the SSE stream players hold
// open.
const (
	EventPlaylistUpdated  = "playlist:updated"
	EventScreenCreated    = "screen:created"
	EventScreenUpdated    = "screen:updated"
	EventTimecodeStarted  = "timecode:started"
	EventTimecodeStopped  = "timecode:stopped"
	EventTimecodeAssigned = "timecode:assigned"
)

type playlistUpdatedEvent struct {
	Type       string `json:"type"`
	PlaylistID int    `json:"playlistId"`
}

type screenEvent struct {
	Type       string `json:"type"`
	ScreenID   int    `json:"screenId"`
	PlaylistID *int   `json:"playlistId,omitempty"`
}

type timecodeStartedEvent struct {
	Type       string    `json:"type"`
	TimecodeID int       `json:"timecodeId"`
	StartedAt  time.Time `json:"startedAt"`
}

type timecodeStoppedEvent struct {
	Type       string `json:"type"`
	TimecodeID int    `json:"timecodeId"`
}

// timecodeId is deliberately not omitempty: unassignment publishes an
// explicit null.
type timecodeAssignedEvent struct {
	Type       string `json:"type"`
	TimecodeID *int   `json:"timecodeId"`
}

func mustMarshal(v any) []byte {
	payload, err := json.Marshal(v)
	if err != nil {
		// Event structs hold only plain values; this cannot fail.
		panic(err)
	}
	return payload
}

func PlaylistUpdated(playlistID int) []byte {
	return mustMarshal(playlistUpdatedEvent{Type: EventPlaylistUpdated, PlaylistID: playlistID})
}

func ScreenCreated(screenID int, playlistID *int) []byte {
	return mustMarshal(screenEvent{Type: EventScreenCreated, ScreenID: screenID, PlaylistID: playlistID})
}

func ScreenUpdated(screenID int, playlistID *int) []byte {
	return mustMarshal(screenEvent{Type: EventScreenUpdated, ScreenID: screenID, PlaylistID: playlistID})
}

func TimecodeStarted(timecodeID int, startedAt time.Time) []byte {
	return mustMarshal(timecodeStartedEvent{Type: EventTimecodeStarted, TimecodeID: timecodeID, StartedAt: startedAt})
}

func TimecodeStopped(timecodeID int) []byte {
	return mustMarshal(timecodeStoppedEvent{Type: EventTimecodeStopped, TimecodeID: timecodeID})
}

func TimecodeAssigned(timecodeID *int) []byte {
	return mustMarshal(timecodeAssignedEvent{Type: EventTimecodeAssigned, TimecodeID: timecodeID})
}

package bus

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ScreenIndex answers "which screens does this mutation reach": the holders
// of a default playlist and the screens bound to a clock.
type ScreenIndex interface {
	ListScreenIDsByPlaylist(playlistID int) ([]int, error)
	ListScreenIDsByTimecode(timecodeID int) ([]int, error)
}

// Mirror is an optional secondary transport for every published event.
type Mirror interface {
	Publish(channel string, payload []byte)
}

// Notifier is the single place admin mutations report to. It computes the
// affected screen set, builds the wire payload and pushes it through the
// bus (and mirror, when configured).
type Notifier struct {
	bus    Bus
	index  ScreenIndex
	mirror Mirror
}

func NewNotifier(b Bus, index ScreenIndex) *Notifier {
	return &Notifier{bus: b, index: index}
}

// WithMirror attaches a secondary transport (e.g. MQTT). Returns the
// notifier for chaining during wiring.
func (n *Notifier) WithMirror(m Mirror) *Notifier {
	n.mirror = m
	return n
}

func (n *Notifier) publish(screenID int, payload []byte) {
	channel := ScreenChannel(screenID)
	n.bus.Publish(channel, payload)
	if n.mirror != nil {
		n.mirror.Publish(channel, payload)
	}
}

// PlaylistUpdated notifies every screen whose default playlist changed.
// Called for playlist metadata edits, entry add/update/remove and reorder.
func (n *Notifier) PlaylistUpdated(playlistID int) {
	ids, err := n.index.ListScreenIDsByPlaylist(playlistID)
	if err != nil {
		log.Error().Err(err).Int("playlist_id", playlistID).Msg("failed to fan out playlist update")
		return
	}
	payload := PlaylistUpdated(playlistID)
	for _, id := range ids {
		n.publish(id, payload)
	}
}

func (n *Notifier) ScreenCreated(screenID int, playlistID *int) {
	n.publish(screenID, ScreenCreated(screenID, playlistID))
}

func (n *Notifier) ScreenUpdated(screenID int, playlistID *int) {
	n.publish(screenID, ScreenUpdated(screenID, playlistID))
}

// TimecodeStarted notifies every screen bound to the clock.
func (n *Notifier) TimecodeStarted(timecodeID int, startedAt time.Time) {
	n.fanOutTimecode(timecodeID, TimecodeStarted(timecodeID, startedAt))
}

// TimecodeStopped notifies every screen bound to the clock.
func (n *Notifier) TimecodeStopped(timecodeID int) {
	n.fanOutTimecode(timecodeID, TimecodeStopped(timecodeID))
}

// TimecodeAssigned notifies one screen that its clock binding changed; nil
// means the binding was cleared and serializes as an explicit null.
func (n *Notifier) TimecodeAssigned(screenID int, timecodeID *int) {
	n.publish(screenID, TimecodeAssigned(timecodeID))
}

func (n *Notifier) fanOutTimecode(timecodeID int, payload []byte) {
	ids, err := n.index.ListScreenIDsByTimecode(timecodeID)
	if err != nil {
		log.Error().Err(err).Int("timecode_id", timecodeID).Msg("failed to fan out timecode event")
		return
	}
	for _, id := range ids {
		n.publish(id, payload)
	}
}

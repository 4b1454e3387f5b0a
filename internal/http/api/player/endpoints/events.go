package endpoints

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lumacast/lumacast/internal/bus"
	"github.com/lumacast/lumacast/internal/http/api"
	"github.com/lumacast/lumacast/internal/model"
)

// ScreenLookup verifies a screen exists before a stream is opened for it.
type ScreenLookup interface {
	GetScreenByID(id int) (model.Screen, error)
}

type eventController struct {
	bus     bus.Bus
	screens ScreenLookup
}

// EventModule mounts the per-screen SSE stream. Events are invalidation
// pings: the player refetches its config when one arrives, and anything
// published while it was disconnected is simply gone.
func EventModule(b bus.Bus, screens ScreenLookup) api.Module {
	ctl := &eventController{bus: b, screens: screens}
	return api.ModuleFunc(func(c *api.Controller) {
		c.Stream("/screens/:id/events", ctl.streamEvents)
	})
}

func (e *eventController) streamEvents(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, api.BadRequest("invalid id"))
		return
	}
	if _, err := e.screens.GetScreenByID(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, api.NotFound("screen not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, api.Internal("could not look up screen"))
		return
	}

	channel := bus.ScreenChannel(id)
	subID, events := e.bus.Subscribe(channel)
	defer e.bus.Unsubscribe(channel, subID)

	ctx.Writer.Header().Set("Content-Type", "text/event-stream")
	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")

	// Initial comment forces the handshake flush so clients know the
	// stream is live before the first event.
	ctx.Writer.WriteString(": connected\n\n")
	ctx.Writer.Flush()

	log.Debug().Int("screen_id", id).Str("subscriber", subID).Msg("event stream opened")

	// Client disconnect cancels the request context, which is the only
	// clean exit besides the bus shutting down.
	done := ctx.Request.Context().Done()
	for {
		select {
		case payload, ok := <-events:
			if !ok {
				log.Debug().Int("screen_id", id).Str("subscriber", subID).Msg("event stream closed")
				return
			}
			ctx.Writer.WriteString("data: " + string(payload) + "\n\n")
			ctx.Writer.Flush()
		case <-done:
			log.Debug().Int("screen_id", id).Str("subscriber", subID).Msg("event stream closed")
			return
		}
	}
}

package endpoints

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lumacast/lumacast/internal/db"
	"github.com/lumacast/lumacast/internal/http/api"
	"github.com/lumacast/lumacast/internal/http/api/admin/packets"
	"github.com/lumacast/lumacast/internal/liveness"
	"github.com/lumacast/lumacast/internal/schedule"
)

type healthController struct {
	store    db.Store
	resolver *schedule.Service
}

// HealthModule mounts the fleet diagnostics endpoint: heartbeat-derived
// liveness plus the currently resolved schedule per screen.
func HealthModule(store db.Store, resolver *schedule.Service) api.Module {
	ctl := &healthController{store: store, resolver: resolver}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/screens/health", ctl.screensHealth)
	})
}

func (h *healthController) screensHealth(ctx *gin.Context) (any, *api.APIError) {
	screens, err := h.store.ListScreens()
	if err != nil {
		return nil, api.Internal(err.Error())
	}

	now := time.Now()
	spaceNames := map[int]string{}
	out := make([]packets.ScreenHealthResponse, 0, len(screens))

	for _, screen := range screens {
		row := packets.ScreenHealthResponse{
			ID:       screen.ID,
			Name:     screen.Name,
			Status:   "offline",
			LastSeen: screen.UpdatedAt.Format(time.RFC3339),
		}
		if liveness.IsOnline(screen.UpdatedAt, now) {
			row.Status = "online"
		}

		name, ok := spaceNames[screen.SpaceID]
		if !ok {
			space, err := h.store.GetSpaceByID(screen.SpaceID)
			if err == nil {
				name = space.Name
			}
			spaceNames[screen.SpaceID] = name
		}
		row.Space = name

		schedules, err := h.store.ListSchedulesByScreen(screen.ID)
		if err != nil {
			log.Error().Err(err).Int("screen_id", screen.ID).Msg("health: could not list schedules")
		} else {
			row.ScheduleCount = len(schedules)
		}

		active, err := h.resolver.ResolveForScreen(screen.ID, now)
		if err != nil {
			log.Error().Err(err).Int("screen_id", screen.ID).Msg("health: schedule resolution failed")
		} else {
			row.ActiveSchedule = active
		}

		out = append(out, row)
	}
	return out, nil
}

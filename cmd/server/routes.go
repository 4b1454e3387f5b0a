package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lumacast/lumacast/internal/bus"
	"github.com/lumacast/lumacast/internal/db"
	"github.com/lumacast/lumacast/internal/http/api"
	adminapi "github.com/lumacast/lumacast/internal/http/api/admin/endpoints"
	playerapi "github.com/lumacast/lumacast/internal/http/api/player/endpoints"
	"github.com/lumacast/lumacast/internal/player"
	"github.com/lumacast/lumacast/internal/schedule"
	"github.com/lumacast/lumacast/internal/timecode"
)

// registerRoutes wires every module onto the engine: the admin control
// surface under /api/admin, the player-facing surface under /api/player.
func registerRoutes(
	r *gin.Engine,
	store db.Store,
	eventBus bus.Bus,
	notifier *bus.Notifier,
	clocks *timecode.Service,
	resolver *schedule.Service,
	assembly *player.Service,
) {
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
	},
		adminapi.VenueModule(store),
		adminapi.ScreenModule(store, notifier),
		adminapi.ContentModule(store),
		adminapi.PlaylistModule(store, notifier),
		adminapi.ScheduleModule(store),
		adminapi.TimecodeModule(clocks, notifier),
		adminapi.HealthModule(store, resolver),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/player",
	},
		playerapi.ScreenModule(assembly),
		playerapi.EventModule(eventBus, store),
		playerapi.TimecodeModule(clocks),
	)
}

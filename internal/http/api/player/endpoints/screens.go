package endpoints

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lumacast/lumacast/internal/http/api"
	"github.com/lumacast/lumacast/internal/player"
)

type screenController struct {
	assembly *player.Service
}

// ScreenModule mounts the config poll. The snapshot it returns is the
// player's entire world: playlist, clock, matrix cell and playback mode.
func ScreenModule(assembly *player.Service) api.Module {
	ctl := &screenController{assembly: assembly}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/screens/:id/config", ctl.getConfig)
	})
}

func pathID(ctx *gin.Context) (int, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, api.BadRequest("invalid id")
	}
	return id, nil
}

func (s *screenController) getConfig(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	cfg, err := s.assembly.GetConfig(id)
	if err != nil {
		return nil, api.StoreError(err, "screen not found")
	}
	return cfg, nil
}

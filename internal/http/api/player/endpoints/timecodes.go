package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/lumacast/lumacast/internal/http/api"
	"github.com/lumacast/lumacast/internal/timecode"
)

type timecodeController struct {
	clocks *timecode.Service
}

// TimecodeModule mounts the clock status read used for drift correction:
// players poll it and snap their clock-locked position to elapsedMs.
func TimecodeModule(clocks *timecode.Service) api.Module {
	ctl := &timecodeController{clocks: clocks}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/timecodes/:id", ctl.getStatus)
	})
}

func (t *timecodeController) getStatus(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	status, err := t.clocks.Status(id)
	if err != nil {
		return nil, api.StoreError(err, "timecode not found")
	}
	return status, nil
}

package endpoints

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/lumacast/lumacast/internal/bus"
	"github.com/lumacast/lumacast/internal/http/api"
	"github.com/lumacast/lumacast/internal/http/api/admin/packets"
	"github.com/lumacast/lumacast/internal/timecode"
)

type timecodeController struct {
	clocks   *timecode.Service
	notifier *bus.Notifier
}

// TimecodeModule mounts shared-clock management. Start and stop transitions
// are broadcast to every screen bound to the clock.
func TimecodeModule(clocks *timecode.Service, notifier *bus.Notifier) api.Module {
	ctl := &timecodeController{clocks: clocks, notifier: notifier}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/timecodes", ctl.listTimecodes)
		c.POST("/timecodes", ctl.createTimecode)
		c.GET("/timecodes/:id", ctl.getTimecode)
		c.PATCH("/timecodes/:id", ctl.updateTimecode)
		c.DELETE("/timecodes/:id", ctl.deleteTimecode)

		c.POST("/timecodes/:id/start", ctl.startTimecode)
		c.POST("/timecodes/:id/stop", ctl.stopTimecode)
	})
}

// clockError maps service failures: field-level validation renders as 422,
// everything else goes through the store mapping.
func clockError(err error, notFoundMessage string) *api.APIError {
	var fields timecode.FieldErrors
	if errors.As(err, &fields) {
		return api.Validation(fields)
	}
	return api.StoreError(err, notFoundMessage)
}

func (t *timecodeController) listTimecodes(ctx *gin.Context) (any, *api.APIError) {
	timecodes, err := t.clocks.List()
	if err != nil {
		return nil, api.Internal(err.Error())
	}
	out := make([]packets.TimecodeResponse, 0, len(timecodes))
	for _, tc := range timecodes {
		out = append(out, packets.NewTimecodeResponse(tc))
	}
	return out, nil
}

func (t *timecodeController) createTimecode(ctx *gin.Context) (any, *api.APIError) {
	var request packets.CreateTimecodeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if request.Speed == 0 {
		request.Speed = 1.0
	}
	tc, err := t.clocks.Create(request.Name, request.Speed)
	if err != nil {
		return nil, clockError(err, "timecode not found")
	}
	return packets.NewTimecodeResponse(tc), nil
}

func (t *timecodeController) getTimecode(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	tc, err := t.clocks.Get(id)
	if err != nil {
		return nil, api.StoreError(err, "timecode not found")
	}
	return packets.NewTimecodeResponse(tc), nil
}

func (t *timecodeController) updateTimecode(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.UpdateTimecodeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if err := t.clocks.Update(id, request.Name, request.Speed); err != nil {
		return nil, clockError(err, "timecode not found")
	}
	tc, err := t.clocks.Get(id)
	if err != nil {
		return nil, api.StoreError(err, "timecode not found")
	}
	return packets.NewTimecodeResponse(tc), nil
}

func (t *timecodeController) deleteTimecode(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := t.clocks.Delete(id); err != nil {
		return nil, api.Internal("could not delete timecode")
	}
	return gin.H{"deleted": id}, nil
}

// startTimecode restarts the clock origin. Starting an already running clock
// resets it to zero.
func (t *timecodeController) startTimecode(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	tc, err := t.clocks.Start(id)
	if err != nil {
		return nil, api.StoreError(err, "timecode not found")
	}
	t.notifier.TimecodeStarted(tc.ID, tc.StartedAt)
	return packets.NewTimecodeResponse(tc), nil
}

func (t *timecodeController) stopTimecode(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	tc, err := t.clocks.Stop(id)
	if err != nil {
		return nil, api.StoreError(err, "timecode not found")
	}
	t.notifier.TimecodeStopped(tc.ID)
	return packets.NewTimecodeResponse(tc), nil
}

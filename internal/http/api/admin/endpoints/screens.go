package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/lumacast/lumacast/internal/bus"
	"github.com/lumacast/lumacast/internal/db"
	"github.com/lumacast/lumacast/internal/http/api"
	"github.com/lumacast/lumacast/internal/http/api/admin/packets"
	"github.com/lumacast/lumacast/internal/model"
)

type screenController struct {
	store    db.Store
	notifier *bus.Notifier
}

// ScreenModule mounts screen CRUD plus the playlist, timecode and matrix
// assignment endpoints.
func ScreenModule(store db.Store, notifier *bus.Notifier) api.Module {
	ctl := &screenController{store: store, notifier: notifier}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/screens", ctl.listScreens)
		c.POST("/screens", ctl.createScreen)
		c.GET("/screens/:id", ctl.getScreen)
		c.PATCH("/screens/:id", ctl.updateScreen)
		c.DELETE("/screens/:id", ctl.deleteScreen)

		c.POST("/screens/:id/playlist", ctl.assignPlaylist)
		c.POST("/screens/:id/timecode", ctl.assignTimecode)
		c.POST("/screens/:id/matrix", ctl.setMatrix)
	})
}

func (s *screenController) listScreens(ctx *gin.Context) (any, *api.APIError) {
	screens, err := s.store.ListScreens()
	if err != nil {
		return nil, api.Internal(err.Error())
	}
	out := make([]packets.ScreenResponse, 0, len(screens))
	for _, sc := range screens {
		out = append(out, packets.NewScreenResponse(sc))
	}
	return out, nil
}

func (s *screenController) createScreen(ctx *gin.Context) (any, *api.APIError) {
	var request packets.CreateScreenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	orientation := model.OrientationLandscape
	if request.Orientation != nil {
		orientation = *request.Orientation
	}
	if orientation != model.OrientationLandscape && orientation != model.OrientationPortrait {
		return nil, api.Validation(map[string]string{"orientation": "must be LANDSCAPE or PORTRAIT"})
	}
	if _, err := s.store.GetSpaceByID(request.SpaceID); err != nil {
		return nil, api.StoreError(err, "space not found")
	}
	screen, err := s.store.CreateScreen(request.SpaceID, request.Name, request.Resolution, orientation)
	if err != nil {
		return nil, api.Internal("could not create screen")
	}
	s.notifier.ScreenCreated(screen.ID, screen.PlaylistID)
	return packets.NewScreenResponse(screen), nil
}

func (s *screenController) getScreen(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	screen, err := s.store.GetScreenByID(id)
	if err != nil {
		return nil, api.StoreError(err, "screen not found")
	}
	return packets.NewScreenResponse(screen), nil
}

func (s *screenController) updateScreen(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.UpdateScreenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if request.Status != nil && *request.Status != model.ScreenStatusOnline && *request.Status != model.ScreenStatusOffline {
		return nil, api.Validation(map[string]string{"status": "must be ONLINE or OFFLINE"})
	}
	if request.Orientation != nil && *request.Orientation != model.OrientationLandscape && *request.Orientation != model.OrientationPortrait {
		return nil, api.Validation(map[string]string{"orientation": "must be LANDSCAPE or PORTRAIT"})
	}
	err := s.store.UpdateScreen(id, db.UpdateScreenParams{
		Name:        request.Name,
		Status:      request.Status,
		Resolution:  request.Resolution,
		Orientation: request.Orientation,
	})
	if err != nil {
		return nil, api.StoreError(err, "screen not found")
	}
	screen, err := s.store.GetScreenByID(id)
	if err != nil {
		return nil, api.StoreError(err, "screen not found")
	}
	s.notifier.ScreenUpdated(screen.ID, screen.PlaylistID)
	return packets.NewScreenResponse(screen), nil
}

func (s *screenController) deleteScreen(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := s.store.DeleteScreen(id); err != nil {
		return nil, api.Internal("could not delete screen")
	}
	return gin.H{"deleted": id}, nil
}

// assignPlaylist sets or clears the screen's default playlist. A null
// playlist_id clears it.
func (s *screenController) assignPlaylist(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.AssignPlaylistToScreenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if request.PlaylistID != nil {
		if _, err := s.store.GetPlaylistByID(*request.PlaylistID); err != nil {
			return nil, api.StoreError(err, "playlist not found")
		}
	}
	if err := s.store.AssignPlaylistToScreen(id, request.PlaylistID); err != nil {
		return nil, api.StoreError(err, "screen not found")
	}
	screen, err := s.store.GetScreenByID(id)
	if err != nil {
		return nil, api.StoreError(err, "screen not found")
	}
	s.notifier.ScreenUpdated(screen.ID, screen.PlaylistID)
	return packets.NewScreenResponse(screen), nil
}

// assignTimecode binds or clears the screen's shared clock. Players react to
// the event by switching playback mode.
func (s *screenController) assignTimecode(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.AssignTimecodeToScreenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if request.TimecodeID != nil {
		if _, err := s.store.GetTimecodeByID(*request.TimecodeID); err != nil {
			return nil, api.StoreError(err, "timecode not found")
		}
	}
	if err := s.store.AssignTimecodeToScreen(id, request.TimecodeID); err != nil {
		return nil, api.StoreError(err, "screen not found")
	}
	screen, err := s.store.GetScreenByID(id)
	if err != nil {
		return nil, api.StoreError(err, "screen not found")
	}
	s.notifier.TimecodeAssigned(screen.ID, screen.TimecodeID)
	return packets.NewScreenResponse(screen), nil
}

func (s *screenController) setMatrix(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.SetScreenMatrixRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	// Both or neither: a dangling row or column is not a grid cell.
	if (request.Row == nil) != (request.Col == nil) {
		return nil, api.Validation(map[string]string{"row": "row and col must be set together"})
	}
	if request.Row != nil && (*request.Row < 0 || *request.Col < 0) {
		return nil, api.Validation(map[string]string{"row": "coordinates must be non-negative"})
	}
	if err := s.store.SetScreenMatrix(id, request.Row, request.Col); err != nil {
		return nil, api.StoreError(err, "screen not found")
	}
	screen, err := s.store.GetScreenByID(id)
	if err != nil {
		return nil, api.StoreError(err, "screen not found")
	}
	s.notifier.ScreenUpdated(screen.ID, screen.PlaylistID)
	return packets.NewScreenResponse(screen), nil
}

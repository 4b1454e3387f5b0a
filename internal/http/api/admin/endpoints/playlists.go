package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/lumacast/lumacast/internal/bus"
	"github.com/lumacast/lumacast/internal/db"
	"github.com/lumacast/lumacast/internal/http/api"
	"github.com/lumacast/lumacast/internal/http/api/admin/packets"
	"github.com/lumacast/lumacast/internal/model"
)

type playlistController struct {
	store    db.Store
	notifier *bus.Notifier
}

// PlaylistModule mounts playlist CRUD and entry management. Every entry
// mutation notifies the screens that carry the playlist.
func PlaylistModule(store db.Store, notifier *bus.Notifier) api.Module {
	ctl := &playlistController{store: store, notifier: notifier}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/playlists", ctl.listPlaylists)
		c.POST("/playlists", ctl.createPlaylist)
		c.GET("/playlists/:id", ctl.getPlaylist)
		c.PATCH("/playlists/:id", ctl.updatePlaylist)
		c.DELETE("/playlists/:id", ctl.deletePlaylist)

		c.POST("/playlists/:id/entries", ctl.addEntry)
		c.PATCH("/playlists/:id/entries/:entryID", ctl.updateEntry)
		c.DELETE("/playlists/:id/entries/:entryID", ctl.removeEntry)
		c.POST("/playlists/:id/reorder", ctl.reorderEntries)
	})
}

// loadPlaylist fetches the playlist; the store hydrates its entries.
func (p *playlistController) loadPlaylist(id int) (model.Playlist, *api.APIError) {
	playlist, err := p.store.GetPlaylistByID(id)
	if err != nil {
		return model.Playlist{}, api.StoreError(err, "playlist not found")
	}
	return playlist, nil
}

func (p *playlistController) listPlaylists(ctx *gin.Context) (any, *api.APIError) {
	playlists, err := p.store.ListPlaylists()
	if err != nil {
		return nil, api.Internal(err.Error())
	}
	out := make([]packets.PlaylistResponse, 0, len(playlists))
	for _, pl := range playlists {
		out = append(out, packets.NewPlaylistResponse(pl))
	}
	return out, nil
}

func (p *playlistController) createPlaylist(ctx *gin.Context) (any, *api.APIError) {
	var request packets.CreatePlaylistRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	playlist, err := p.store.CreatePlaylist(request.Name)
	if err != nil {
		return nil, api.Internal("could not create playlist")
	}
	return packets.NewPlaylistResponse(playlist), nil
}

func (p *playlistController) getPlaylist(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	playlist, apiErr := p.loadPlaylist(id)
	if apiErr != nil {
		return nil, apiErr
	}
	return packets.NewPlaylistResponse(playlist), nil
}

func (p *playlistController) updatePlaylist(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.UpdatePlaylistRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if err := p.store.UpdatePlaylist(id, request.Name); err != nil {
		return nil, api.StoreError(err, "playlist not found")
	}
	playlist, apiErr := p.loadPlaylist(id)
	if apiErr != nil {
		return nil, apiErr
	}
	p.notifier.PlaylistUpdated(id)
	return packets.NewPlaylistResponse(playlist), nil
}

func (p *playlistController) deletePlaylist(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	// Notify before the rows disappear so holders still resolve.
	p.notifier.PlaylistUpdated(id)
	if err := p.store.DeletePlaylist(id); err != nil {
		return nil, api.Internal("could not delete playlist")
	}
	return gin.H{"deleted": id}, nil
}

func (p *playlistController) addEntry(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.AddPlaylistEntryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if request.Duration != nil && *request.Duration < 1 {
		return nil, api.Validation(map[string]string{"duration": "must be at least 1 second"})
	}
	if _, err := p.store.GetContentByID(request.ContentID); err != nil {
		return nil, api.StoreError(err, "content not found")
	}
	if _, err := p.store.GetPlaylistByID(id); err != nil {
		return nil, api.StoreError(err, "playlist not found")
	}
	if _, err := p.store.AddPlaylistEntry(id, request.ContentID, request.Position, request.Duration); err != nil {
		return nil, api.Internal("could not add entry")
	}
	playlist, apiErr := p.loadPlaylist(id)
	if apiErr != nil {
		return nil, apiErr
	}
	p.notifier.PlaylistUpdated(id)
	return packets.NewPlaylistResponse(playlist), nil
}

func (p *playlistController) updateEntry(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	entryID, apiErr := pathParamInt(ctx, "entryID")
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.UpdatePlaylistEntryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if request.Duration != nil && *request.Duration < 1 {
		return nil, api.Validation(map[string]string{"duration": "must be at least 1 second"})
	}
	if err := p.store.UpdatePlaylistEntry(entryID, request.Position, request.Duration); err != nil {
		return nil, api.StoreError(err, "entry not found")
	}
	playlist, apiErr := p.loadPlaylist(id)
	if apiErr != nil {
		return nil, apiErr
	}
	p.notifier.PlaylistUpdated(id)
	return packets.NewPlaylistResponse(playlist), nil
}

func (p *playlistController) removeEntry(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	entryID, apiErr := pathParamInt(ctx, "entryID")
	if apiErr != nil {
		return nil, apiErr
	}
	if err := p.store.RemovePlaylistEntry(entryID); err != nil {
		return nil, api.StoreError(err, "entry not found")
	}
	playlist, apiErr := p.loadPlaylist(id)
	if apiErr != nil {
		return nil, apiErr
	}
	p.notifier.PlaylistUpdated(id)
	return packets.NewPlaylistResponse(playlist), nil
}

// reorderEntries rewrites positions to match the given entry id order.
func (p *playlistController) reorderEntries(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.ReorderEntriesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if err := p.store.ReorderPlaylistEntries(id, request.EntryIDs); err != nil {
		return nil, api.StoreError(err, "playlist not found")
	}
	playlist, apiErr := p.loadPlaylist(id)
	if apiErr != nil {
		return nil, apiErr
	}
	p.notifier.PlaylistUpdated(id)
	return packets.NewPlaylistResponse(playlist), nil
}

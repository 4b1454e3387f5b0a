package endpoints

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lumacast/lumacast/internal/db"
	"github.com/lumacast/lumacast/internal/http/api"
	"github.com/lumacast/lumacast/internal/http/api/admin/packets"
)

type venueController struct {
	store db.Store
}

// VenueModule mounts venue CRUD and the nested space endpoints.
func VenueModule(store db.Store) api.Module {
	ctl := &venueController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/venues", ctl.listVenues)
		c.POST("/venues", ctl.createVenue)
		c.GET("/venues/:id", ctl.getVenue)
		c.PUT("/venues/:id", ctl.updateVenue)
		c.DELETE("/venues/:id", ctl.deleteVenue)

		// space CRUD, nested under the owning venue for create/list
		c.GET("/venues/:id/spaces", ctl.listSpaces)
		c.POST("/venues/:id/spaces", ctl.createSpace)
		c.GET("/spaces/:id", ctl.getSpace)
		c.PUT("/spaces/:id", ctl.updateSpace)
		c.DELETE("/spaces/:id", ctl.deleteSpace)
	})
}

func pathID(ctx *gin.Context) (int, *api.APIError) {
	return pathParamInt(ctx, "id")
}

func pathParamInt(ctx *gin.Context, name string) (int, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, api.BadRequest("invalid " + name)
	}
	return id, nil
}

func (v *venueController) listVenues(ctx *gin.Context) (any, *api.APIError) {
	venues, err := v.store.ListVenues()
	if err != nil {
		return nil, api.Internal(err.Error())
	}
	out := make([]packets.VenueResponse, 0, len(venues))
	for _, venue := range venues {
		out = append(out, packets.NewVenueResponse(venue))
	}
	return out, nil
}

func (v *venueController) createVenue(ctx *gin.Context) (any, *api.APIError) {
	var request packets.CreateVenueRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	venue, err := v.store.CreateVenue(request.Name)
	if err != nil {
		return nil, api.Internal("could not create venue")
	}
	return packets.NewVenueResponse(venue), nil
}

func (v *venueController) getVenue(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	venue, err := v.store.GetVenueByID(id)
	if err != nil {
		return nil, api.StoreError(err, "venue not found")
	}
	return packets.NewVenueResponse(venue), nil
}

func (v *venueController) updateVenue(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.UpdateVenueRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if err := v.store.UpdateVenue(id, request.Name); err != nil {
		return nil, api.StoreError(err, "venue not found")
	}
	venue, err := v.store.GetVenueByID(id)
	if err != nil {
		return nil, api.StoreError(err, "venue not found")
	}
	return packets.NewVenueResponse(venue), nil
}

// Deleting a venue cascades to its spaces and their screens.
func (v *venueController) deleteVenue(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := v.store.DeleteVenue(id); err != nil {
		return nil, api.Internal("could not delete venue")
	}
	return gin.H{"deleted": id}, nil
}

func (v *venueController) listSpaces(ctx *gin.Context) (any, *api.APIError) {
	venueID, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	spaces, err := v.store.ListSpacesByVenue(venueID)
	if err != nil {
		return nil, api.Internal(err.Error())
	}
	out := make([]packets.SpaceResponse, 0, len(spaces))
	for _, sp := range spaces {
		out = append(out, packets.NewSpaceResponse(sp))
	}
	return out, nil
}

func (v *venueController) createSpace(ctx *gin.Context) (any, *api.APIError) {
	venueID, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.CreateSpaceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if _, err := v.store.GetVenueByID(venueID); err != nil {
		return nil, api.StoreError(err, "venue not found")
	}
	space, err := v.store.CreateSpace(venueID, request.Name)
	if err != nil {
		return nil, api.Internal("could not create space")
	}
	return packets.NewSpaceResponse(space), nil
}

func (v *venueController) getSpace(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	space, err := v.store.GetSpaceByID(id)
	if err != nil {
		return nil, api.StoreError(err, "space not found")
	}
	return packets.NewSpaceResponse(space), nil
}

func (v *venueController) updateSpace(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.UpdateSpaceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if err := v.store.UpdateSpace(id, request.Name); err != nil {
		return nil, api.StoreError(err, "space not found")
	}
	space, err := v.store.GetSpaceByID(id)
	if err != nil {
		return nil, api.StoreError(err, "space not found")
	}
	return packets.NewSpaceResponse(space), nil
}

func (v *venueController) deleteSpace(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := v.store.DeleteSpace(id); err != nil {
		return nil, api.Internal("could not delete space")
	}
	return gin.H{"deleted": id}, nil
}

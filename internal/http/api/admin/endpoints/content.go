package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/lumacast/lumacast/internal/db"
	"github.com/lumacast/lumacast/internal/http/api"
	"github.com/lumacast/lumacast/internal/http/api/admin/packets"
	"github.com/lumacast/lumacast/internal/model"
)

type contentController struct {
	store db.Store
}

func ContentModule(store db.Store) api.Module {
	ctl := &contentController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/content", ctl.listContent)
		c.POST("/content", ctl.createContent)
		c.GET("/content/:id", ctl.getContent)
		c.PATCH("/content/:id", ctl.updateContent)
		c.DELETE("/content/:id", ctl.deleteContent)
	})
}

func (cc *contentController) listContent(ctx *gin.Context) (any, *api.APIError) {
	items, err := cc.store.ListContent()
	if err != nil {
		return nil, api.Internal(err.Error())
	}
	out := make([]packets.ContentResponse, 0, len(items))
	for _, item := range items {
		out = append(out, packets.NewContentResponse(item))
	}
	return out, nil
}

func (cc *contentController) createContent(ctx *gin.Context) (any, *api.APIError) {
	var request packets.CreateContentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	fields := map[string]string{}
	if !model.ValidContentType(request.Type) {
		fields["type"] = "unknown content type"
	}
	duration := request.Duration
	if duration == 0 {
		duration = model.DefaultContentDuration
	}
	if duration < 1 {
		fields["duration"] = "must be at least 1 second"
	}
	if len(fields) > 0 {
		return nil, api.Validation(fields)
	}
	item, err := cc.store.CreateContent(request.Name, request.Type, request.URL, request.Body, request.Data, duration)
	if err != nil {
		return nil, api.Internal("could not create content")
	}
	return packets.NewContentResponse(item), nil
}

func (cc *contentController) getContent(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	item, err := cc.store.GetContentByID(id)
	if err != nil {
		return nil, api.StoreError(err, "content not found")
	}
	return packets.NewContentResponse(item), nil
}

// updateContent patches mutable fields. The content type is fixed at
// creation; retype by creating a new item.
func (cc *contentController) updateContent(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.UpdateContentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if request.Duration != nil && *request.Duration < 1 {
		return nil, api.Validation(map[string]string{"duration": "must be at least 1 second"})
	}
	if err := cc.store.UpdateContent(id, request.Name, request.URL, request.Body, request.Data, request.Duration); err != nil {
		return nil, api.StoreError(err, "content not found")
	}
	item, err := cc.store.GetContentByID(id)
	if err != nil {
		return nil, api.StoreError(err, "content not found")
	}
	return packets.NewContentResponse(item), nil
}

func (cc *contentController) deleteContent(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := cc.store.DeleteContent(id); err != nil {
		return nil, api.Internal("could not delete content")
	}
	return gin.H{"deleted": id}, nil
}

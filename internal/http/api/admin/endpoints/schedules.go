package endpoints

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lumacast/lumacast/internal/db"
	"github.com/lumacast/lumacast/internal/http/api"
	"github.com/lumacast/lumacast/internal/http/api/admin/packets"
)

type scheduleController struct {
	store db.Store
}

// ScheduleModule mounts schedule management, nested under the owning screen
// for create and list.
func ScheduleModule(store db.Store) api.Module {
	ctl := &scheduleController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/screens/:id/schedules", ctl.listSchedules)
		c.POST("/screens/:id/schedules", ctl.createSchedule)
		c.GET("/schedules/:id", ctl.getSchedule)
		c.PUT("/schedules/:id", ctl.updateSchedule)
		c.DELETE("/schedules/:id", ctl.deleteSchedule)
	})
}

// validateConstraints checks the date, time and weekday fields of a schedule
// request and returns field-level errors.
func validateConstraints(startDate, endDate, startTime, endTime *string, days []int64) map[string]string {
	fields := map[string]string{}
	checkDate := func(name string, v *string) {
		if v == nil {
			return
		}
		if _, err := time.Parse("2006-01-02", *v); err != nil {
			fields[name] = "must be formatted YYYY-MM-DD"
		}
	}
	checkTime := func(name string, v *string) {
		if v == nil {
			return
		}
		if _, err := time.Parse("15:04", *v); err != nil {
			fields[name] = "must be formatted HH:mm"
		}
	}
	checkDate("start_date", startDate)
	checkDate("end_date", endDate)
	checkTime("start_time", startTime)
	checkTime("end_time", endTime)
	for _, d := range days {
		if d < 0 || d > 6 {
			fields["days_of_week"] = "days must be 0 (Sunday) through 6 (Saturday)"
			break
		}
	}
	return fields
}

func (sc *scheduleController) listSchedules(ctx *gin.Context) (any, *api.APIError) {
	screenID, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	schedules, err := sc.store.ListSchedulesByScreen(screenID)
	if err != nil {
		return nil, api.Internal(err.Error())
	}
	out := make([]packets.ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, packets.NewScheduleResponse(s))
	}
	return out, nil
}

func (sc *scheduleController) createSchedule(ctx *gin.Context) (any, *api.APIError) {
	screenID, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.CreateScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if fields := validateConstraints(request.StartDate, request.EndDate, request.StartTime, request.EndTime, request.DaysOfWeek); len(fields) > 0 {
		return nil, api.Validation(fields)
	}
	if _, err := sc.store.GetScreenByID(screenID); err != nil {
		return nil, api.StoreError(err, "screen not found")
	}
	if _, err := sc.store.GetPlaylistByID(request.PlaylistID); err != nil {
		return nil, api.StoreError(err, "playlist not found")
	}
	schedule, err := sc.store.CreateSchedule(db.ScheduleParams{
		ScreenID:   screenID,
		PlaylistID: request.PlaylistID,
		Name:       request.Name,
		Priority:   request.Priority,
		StartDate:  request.StartDate,
		EndDate:    request.EndDate,
		StartTime:  request.StartTime,
		EndTime:    request.EndTime,
		DaysOfWeek: request.DaysOfWeek,
	})
	if err != nil {
		return nil, api.Internal("could not create schedule")
	}
	return packets.NewScheduleResponse(schedule), nil
}

func (sc *scheduleController) getSchedule(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	schedule, err := sc.store.GetScheduleByID(id)
	if err != nil {
		return nil, api.StoreError(err, "schedule not found")
	}
	return packets.NewScheduleResponse(schedule), nil
}

// updateSchedule replaces the schedule's constraint set wholesale; omitted
// constraints become unconstrained rather than sticking.
func (sc *scheduleController) updateSchedule(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	var request packets.UpdateScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}
	if fields := validateConstraints(request.StartDate, request.EndDate, request.StartTime, request.EndTime, request.DaysOfWeek); len(fields) > 0 {
		return nil, api.Validation(fields)
	}
	if _, err := sc.store.GetPlaylistByID(request.PlaylistID); err != nil {
		return nil, api.StoreError(err, "playlist not found")
	}
	err := sc.store.UpdateSchedule(id, db.ScheduleParams{
		PlaylistID: request.PlaylistID,
		Name:       request.Name,
		Priority:   request.Priority,
		StartDate:  request.StartDate,
		EndDate:    request.EndDate,
		StartTime:  request.StartTime,
		EndTime:    request.EndTime,
		DaysOfWeek: request.DaysOfWeek,
	})
	if err != nil {
		return nil, api.StoreError(err, "schedule not found")
	}
	schedule, err := sc.store.GetScheduleByID(id)
	if err != nil {
		return nil, api.StoreError(err, "schedule not found")
	}
	return packets.NewScheduleResponse(schedule), nil
}

func (sc *scheduleController) deleteSchedule(ctx *gin.Context) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	if err := sc.store.DeleteSchedule(id); err != nil {
		return nil, api.Internal("could not delete schedule")
	}
	return gin.H{"deleted": id}, nil
}

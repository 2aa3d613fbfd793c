package apis

import (
	"context"
	"errors"
	"eventlist-backend/cmd/eventlist/model"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type IEventRepo interface {
	ListEvents(ctx context.Context) ([]model.Event, error)
	GetEvent(ctx context.Context, id int) (*model.Event, error)
	CreateEvent(ctx context.Context, event *model.Event) error
	UpdateEvent(ctx context.Context, event *model.Event) error
	DeleteEvent(ctx context.Context, id int) error
}

type EventAPI struct {
	eventRepo IEventRepo
}

func NewEventAPI(eventRepo IEventRepo) *EventAPI {

	return &EventAPI{
		eventRepo: eventRepo,
	}
}

func (a *EventAPI) Setup(g *echo.Group) {
	g.GET("/event", a.listEvents)
	g.POST("/event", a.createEvent)
	g.GET("/event/:id", a.getEvent)
	g.PUT("/event/:id", a.updateEvent)
	g.DELETE("/event/:id", a.deleteEvent)
}

func (a *EventAPI) listEvents(c echo.Context) error {

	ctx := c.Request().Context()

	events, err := a.eventRepo.ListEvents(ctx)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(http.StatusOK, events)
}

func (a *EventAPI) createEvent(c echo.Context) error {

	ctx := c.Request().Context()

	var form model.EventForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	if err := c.Validate(&form); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	matchTime, err := model.ParseMatchTime(form.MatchTime)
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	event := model.Event{
		Name:      form.Name,
		MatchTime: matchTime,
		Mix10:     model.ParseMix10(form.Mix10),
	}

	err = a.eventRepo.CreateEvent(ctx, &event)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusCreated,
		model.BaseResponse{
			Message: "Event added successfully",
			Data:    event,
		},
	)
}

func (a *EventAPI) getEvent(c echo.Context) error {

	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(
			http.StatusNotFound,
			model.BaseResponse{
				Message: "Event not found",
			},
		)
	}

	event, err := a.eventRepo.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(
				http.StatusNotFound,
				model.BaseResponse{
					Message: "Event not found",
				},
			)
		}
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(http.StatusOK, event)
}

func (a *EventAPI) updateEvent(c echo.Context) error {

	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(
			http.StatusNotFound,
			model.BaseResponse{
				Message: "Event not found",
			},
		)
	}

	// existence first, before any field validation
	_, err = a.eventRepo.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(
				http.StatusNotFound,
				model.BaseResponse{
					Message: "Event not found",
				},
			)
		}
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	var form model.EventForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	if err := c.Validate(&form); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	matchTime, err := model.ParseMatchTime(form.MatchTime)
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	event := model.Event{
		ID:        id,
		Name:      form.Name,
		MatchTime: matchTime,
		Mix10:     model.ParseMix10(form.Mix10),
	}

	err = a.eventRepo.UpdateEvent(ctx, &event)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "Event updated successfully",
			Data:    event,
		},
	)
}

func (a *EventAPI) deleteEvent(c echo.Context) error {

	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(
			http.StatusNotFound,
			model.BaseResponse{
				Message: "Event not found",
			},
		)
	}

	_, err = a.eventRepo.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(
				http.StatusNotFound,
				model.BaseResponse{
					Message: "Event not found",
				},
			)
		}
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	err = a.eventRepo.DeleteEvent(ctx, id)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "Event deleted successfully",
		},
	)
}

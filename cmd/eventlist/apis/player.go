package apis

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"eventlist-backend/cmd/eventlist/model"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/goforj/godump"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type IPlayerRepo interface {
	ListPlayers(ctx context.Context) ([]model.Player, error)
	GetPlayer(ctx context.Context, id int) (*model.Player, error)
	CreatePlayer(ctx context.Context, player *model.Player) error
	UpdatePlayer(ctx context.Context, player *model.Player) error
	DeletePlayer(ctx context.Context, id int) error
}

type PlayerAPI struct {
	playerRepo IPlayerRepo
}

func NewPlayerAPI(playerRepo IPlayerRepo) *PlayerAPI {

	return &PlayerAPI{
		playerRepo: playerRepo,
	}
}

func (a *PlayerAPI) Setup(g *echo.Group) {
	g.GET("/player", a.listPlayers)
	g.POST("/player", a.createPlayer)
	g.GET("/player/:id", a.getPlayer)
	g.PUT("/player/:id", a.updatePlayer)
	g.DELETE("/player/:id", a.deletePlayer)
	g.POST("/player/import", a.importPlayers)
}

func (a *PlayerAPI) listPlayers(c echo.Context) error {

	ctx := c.Request().Context()

	players, err := a.playerRepo.ListPlayers(ctx)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(http.StatusOK, players)
}

func (a *PlayerAPI) createPlayer(c echo.Context) error {

	ctx := c.Request().Context()

	var form model.PlayerForm
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

	eventID, err := strconv.Atoi(form.EventID)
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "event_id must be an integer",
			},
		)
	}

	team, err := model.ParseTeam(form.Team)
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	player := model.Player{
		Name:    form.Name,
		EventID: eventID,
		Team:    team,
	}

	err = a.playerRepo.CreatePlayer(ctx, &player)
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
			Message: "Player added successfully",
			Data:    player,
		},
	)
}

func (a *PlayerAPI) getPlayer(c echo.Context) error {

	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(
			http.StatusNotFound,
			model.BaseResponse{
				Message: "Player not found",
			},
		)
	}

	player, err := a.playerRepo.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(
				http.StatusNotFound,
				model.BaseResponse{
					Message: "Player not found",
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

	return c.JSON(http.StatusOK, player)
}

func (a *PlayerAPI) updatePlayer(c echo.Context) error {

	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(
			http.StatusNotFound,
			model.BaseResponse{
				Message: "Player not found",
			},
		)
	}

	// existence first, before any field validation
	_, err = a.playerRepo.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(
				http.StatusNotFound,
				model.BaseResponse{
					Message: "Player not found",
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

	var form model.PlayerForm
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

	eventID, err := strconv.Atoi(form.EventID)
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "event_id must be an integer",
			},
		)
	}

	team, err := model.ParseTeam(form.Team)
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	player := model.Player{
		ID:      id,
		Name:    form.Name,
		EventID: eventID,
		Team:    team,
	}

	err = a.playerRepo.UpdatePlayer(ctx, &player)
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
			Message: "Player updated successfully",
			Data:    player,
		},
	)
}

func (a *PlayerAPI) deletePlayer(c echo.Context) error {

	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(
			http.StatusNotFound,
			model.BaseResponse{
				Message: "Player not found",
			},
		)
	}

	_, err = a.playerRepo.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(
				http.StatusNotFound,
				model.BaseResponse{
					Message: "Player not found",
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

	err = a.playerRepo.DeletePlayer(ctx, id)
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
			Message: "Player deleted successfully",
		},
	)
}

func (a *PlayerAPI) importPlayers(c echo.Context) error {

	ctx := c.Request().Context()

	var form model.RosterImportForm
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

	eventID, err := strconv.Atoi(form.EventID)
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: "event_id must be an integer",
			},
		)
	}

	defaultTeam, err := model.ParseTeam(form.Team)
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	csvfile, err := c.FormFile("csvfile")
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	cf, err := csvfile.Open()
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	defer cf.Close()

	// strip the UTF-8 BOM Excel prepends, it corrupts the first header name
	reader := bufio.NewReader(cf)
	if bom, err := reader.Peek(3); err == nil && bytes.Equal(bom, []byte{0xEF, 0xBB, 0xBF}) {
		reader.Discard(3)
	}

	var rows []model.PlayerCSV
	err = gocsv.Unmarshal(reader, &rows)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	godump.Dump(rows)

	// validate every row before touching storage
	players := make([]model.Player, 0, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return c.JSON(
				http.StatusBadRequest,
				model.BaseResponse{
					Message: fmt.Sprintf("row %d: name is required", i+1),
				},
			)
		}

		team := defaultTeam
		if strings.TrimSpace(row.Team) != "" {
			team, err = model.ParseTeam(row.Team)
			if err != nil {
				return c.JSON(
					http.StatusBadRequest,
					model.BaseResponse{
						Message: fmt.Sprintf("row %d: %s", i+1, err.Error()),
					},
				)
			}
		}

		players = append(players, model.Player{
			Name:    name,
			EventID: eventID,
			Team:    team,
		})
	}

	for i := range players {
		err = a.playerRepo.CreatePlayer(ctx, &players[i])
		if err != nil {
			return c.JSON(
				http.StatusInternalServerError,
				model.BaseResponse{
					Message: err.Error(),
				},
			)
		}
	}

	return c.JSON(
		http.StatusCreated,
		model.BaseResponse{
			Message: "Players imported successfully",
			Data:    players,
		},
	)
}

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-timetable/dashboard-api/internal/models"
	"github.com/smart-timetable/dashboard-api/internal/sync"
	appErrors "github.com/smart-timetable/dashboard-api/pkg/errors"
	"github.com/smart-timetable/dashboard-api/pkg/response"
)

type roomDirectory interface {
	ListRooms(ctx context.Context) ([]models.Room, sync.Source, error)
	AddRoom(ctx context.Context, input sync.RoomInput) (models.Room, sync.Source, error)
	RemoveRoom(ctx context.Context, id int64) (sync.Source, error)
}

// RoomHandler wires room routes to the syncer. Rooms have no update route;
// dashboard clients replace them.
type RoomHandler struct {
	rooms roomDirectory
}

// NewRoomHandler constructs a new RoomHandler.
func NewRoomHandler(rooms roomDirectory) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// List godoc
// @Summary List rooms
// @Tags Rooms
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	records, source, err := h.rooms.ListRooms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	response.OK(c, records)
}

// Create godoc
// @Summary Add a room
// @Tags Rooms
// @Accept json
// @Produce json
// @Param payload body sync.RoomInput true "Room payload"
// @Success 201 {object} response.Envelope
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var input sync.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid room payload"))
		return
	}
	record, source, err := h.rooms.AddRoom(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	response.Created(c, record)
}

// Delete godoc
// @Summary Remove a room
// @Tags Rooms
// @Param id path int true "Room ID"
// @Success 200 {object} response.Envelope
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	source, err := h.rooms.RemoveRoom(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithSource(c, string(source))
	response.Success(c)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hrsuite/recruit-go/response"
	"github.com/hrsuite/recruit-go/services"
	"github.com/hrsuite/recruit-go/websocket"
)

type EventHandler struct {
	service *services.EventService
	hub     *websocket.Hub
}

func NewEventHandler(service *services.EventService, hub *websocket.Hub) *EventHandler {
	return &EventHandler{service: service, hub: hub}
}

func (h *EventHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	events, err := h.service.Recent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: events})
}

// Stream upgrades to a websocket and feeds the dashboard event hub.
func (h *EventHandler) Stream(c *gin.Context) {
	h.hub.Serve(c.Writer, c.Request)
}

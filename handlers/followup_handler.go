package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrsuite/recruit-go/dto"
	"github.com/hrsuite/recruit-go/response"
	"github.com/hrsuite/recruit-go/services"
	"github.com/hrsuite/recruit-go/utils"
)

type FollowUpHandler struct {
	service *services.FollowUpService
}

func NewFollowUpHandler(service *services.FollowUpService) *FollowUpHandler {
	return &FollowUpHandler{service: service}
}

func (h *FollowUpHandler) Create(c *gin.Context) {
	var input dto.CreateFollowUpDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	owner, err := h.service.RequirementOwner(input.RequirementID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !requireOwner(c, owner) {
		return
	}

	followUp, err := h.service.Create(c, userID, input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: followUp})
}

func (h *FollowUpHandler) Respond(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.RespondFollowUpDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := utils.GetUserIDFromContext(c)
	followUp, err := h.service.Respond(c, userID, id, input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: followUp})
}

func (h *FollowUpHandler) ListByApplication(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	views, err := h.service.ListByApplication(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: views})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrsuite/recruit-go/dto"
	"github.com/hrsuite/recruit-go/response"
	"github.com/hrsuite/recruit-go/services"
	"github.com/hrsuite/recruit-go/utils"
)

type CompletionHandler struct {
	service *services.CompletionService
}

func NewCompletionHandler(service *services.CompletionService) *CompletionHandler {
	return &CompletionHandler{service: service}
}

func (h *CompletionHandler) CompleteDocumentStage(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	userID, _ := utils.GetUserIDFromContext(c)
	app, err := h.service.CompleteDocumentStage(c, id, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: app})
}

func (h *CompletionHandler) GetBenefits(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	owner, err := h.service.ApplicationOwner(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !requireOwner(c, owner) {
		return
	}

	enrollment, err := h.service.GetBenefitsEnrollment(id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: enrollment})
}

func (h *CompletionHandler) SaveBenefits(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	owner, err := h.service.ApplicationOwner(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !requireOwner(c, owner) {
		return
	}

	var input dto.SaveBenefitsDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := utils.GetUserIDFromContext(c)
	enrollment, err := h.service.SaveBenefitsEnrollment(c, id, input, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: enrollment})
}

func (h *CompletionHandler) SaveProfileEntry(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	owner, err := h.service.ApplicationOwner(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !requireOwner(c, owner) {
		return
	}

	var input dto.SaveProfileEntryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := utils.GetUserIDFromContext(c)
	entry, err := h.service.SaveProfileEntry(c, id, input, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: entry})
}

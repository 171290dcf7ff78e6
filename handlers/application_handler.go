package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrsuite/recruit-go/dto"
	"github.com/hrsuite/recruit-go/models"
	"github.com/hrsuite/recruit-go/response"
	"github.com/hrsuite/recruit-go/services"
	"github.com/hrsuite/recruit-go/utils"
)

type ApplicationHandler struct {
	service   *services.ApplicationService
	documents *services.DocumentService
}

func NewApplicationHandler(service *services.ApplicationService, documents *services.DocumentService) *ApplicationHandler {
	return &ApplicationHandler{service: service, documents: documents}
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var input dto.CreateApplicationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	app, err := h.service.Create(userID, input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: app})
}

// applicationView decorates an application with its derived aggregate
// document status for dashboards.
type applicationView struct {
	models.Application
	AggregateDocuments models.AggregateDocumentStatus `json:"aggregate_documents"`
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	app, err := h.service.Get(id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	claims, err := utils.GetClaimsFromContext(c)
	if err != nil || (!claims.IsStaff() && claims.UserID != app.ApplicantID) {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "forbidden"})
		return
	}

	aggregate, err := h.documents.Aggregate(app.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: applicationView{Application: app, AggregateDocuments: aggregate}})
}

func (h *ApplicationHandler) List(c *gin.Context) {
	var filter dto.ApplicationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	if !claims.IsStaff() {
		filter.ApplicantID = claims.UserID
	}

	apps, err := h.service.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: apps})
}

func (h *ApplicationHandler) Advance(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.AdvanceStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := utils.GetUserIDFromContext(c)
	app, err := h.service.Advance(c, id, models.ApplicationStatus(input.Target), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: app})
}

func (h *ApplicationHandler) ScheduleInterview(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.ScheduleInterviewDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := utils.GetUserIDFromContext(c)
	app, err := h.service.ScheduleInterview(c, id, input, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: app})
}

func (h *ApplicationHandler) ScheduleBatch(c *gin.Context) {
	var input dto.ScheduleBatchDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := utils.GetUserIDFromContext(c)
	results := h.service.ScheduleBatch(c, input, userID)

	c.JSON(http.StatusOK, response.SuccessResponse{Data: results})
}

func (h *ApplicationHandler) SendOffer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.SendOfferDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := utils.GetUserIDFromContext(c)
	app, err := h.service.SendOffer(c, id, input, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: app})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hrsuite/recruit-go/dto"
	"github.com/hrsuite/recruit-go/response"
	"github.com/hrsuite/recruit-go/services"
	"github.com/hrsuite/recruit-go/utils"
)

type DocumentHandler struct {
	service *services.DocumentService
}

func NewDocumentHandler(service *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

func (h *DocumentHandler) ListRequirements(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	reqs, err := h.service.ListRequirements(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	aggregate, err := h.service.Aggregate(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: gin.H{
		"requirements": reqs,
		"aggregate":    aggregate,
	}})
}

func (h *DocumentHandler) CreateRequirement(c *gin.Context) {
	var input dto.CreateRequirementDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req, err := h.service.CreateRequirement(c, input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: req})
}

func (h *DocumentHandler) DeleteRequirement(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.DeleteRequirementDTO
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.DeleteRequirement(c, id, input.Override); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "requirement deleted"})
}

// Submit accepts a multipart upload: the file part plus declared metadata.
// Only the declared name/size are validated against the requirement; bytes go
// straight to blob storage.
func (h *DocumentHandler) Submit(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	owner, err := h.service.RequirementOwner(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !requireOwner(c, owner) {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	sizeOverride := fileHeader.Size
	if declared := c.PostForm("file_size_bytes"); declared != "" {
		if parsed, err := strconv.ParseInt(declared, 10, 64); err == nil {
			sizeOverride = parsed
		}
	}

	input := dto.SubmitDocumentDTO{
		FileName:           fileHeader.Filename,
		FileSizeBytes:      sizeOverride,
		ContentType:        fileHeader.Header.Get("Content-Type"),
		DeclaredIdentifier: c.PostForm("declared_identifier"),
	}

	sub, err := h.service.Submit(c, id, input, file)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: sub})
}

func (h *DocumentHandler) Review(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.ReviewDocumentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := utils.GetUserIDFromContext(c)
	sub, aggregate, err := h.service.Review(c, id, input, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: gin.H{
		"submission": sub,
		"aggregate":  aggregate,
	}})
}

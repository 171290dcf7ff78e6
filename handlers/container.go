package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrsuite/recruit-go/models"
	"github.com/hrsuite/recruit-go/response"
	"github.com/hrsuite/recruit-go/services"
	"github.com/hrsuite/recruit-go/utils"
	"github.com/hrsuite/recruit-go/websocket"
)

type Handlers struct {
	User        *UserHandler
	Application *ApplicationHandler
	Document    *DocumentHandler
	Completion  *CompletionHandler
	FollowUp    *FollowUpHandler
	Event       *EventHandler
}

func New(svc *services.Services, hub *websocket.Hub) *Handlers {
	return &Handlers{
		User:        NewUserHandler(svc.User),
		Application: NewApplicationHandler(svc.Application, svc.Document),
		Document:    NewDocumentHandler(svc.Document),
		Completion:  NewCompletionHandler(svc.Completion),
		FollowUp:    NewFollowUpHandler(svc.FollowUp),
		Event:       NewEventHandler(svc.Event, hub),
	}
}

// requireOwner aborts unless the caller is staff or the applicant who owns
// the resource. Returns true when the request may proceed.
func requireOwner(c *gin.Context, applicantID uint) bool {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return false
	}
	if !claims.IsStaff() && claims.UserID != applicantID {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "forbidden"})
		return false
	}
	return true
}

// statusFor maps engine error kinds onto HTTP statuses. Unknown errors are
// internal.
func statusFor(err error) int {
	switch models.KindOf(err) {
	case models.KindNotFound:
		return http.StatusNotFound
	case models.KindInvalidTransition, models.KindIncompleteRequirements, models.KindRequirementLocked:
		return http.StatusConflict
	case models.KindAlreadyApproved, models.KindAlreadyOffered, models.KindAlreadyResolved,
		models.KindAlreadyCompleted, models.KindDuplicatePending:
		return http.StatusConflict
	case models.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFor(err), response.ErrorResponse{
		Error: err.Error(),
		Kind:  string(models.KindOf(err)),
	})
}

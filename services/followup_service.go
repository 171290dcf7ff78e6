package services

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hrsuite/recruit-go/config"
	"github.com/hrsuite/recruit-go/dto"
	"github.com/hrsuite/recruit-go/models"
	"github.com/hrsuite/recruit-go/repositories"
	"github.com/hrsuite/recruit-go/utils"
)

const (
	DecisionAccept = "accept"
)

// FollowUpService handles the extension/clarification negotiation between
// applicant and staff. One pending request per requirement, staff response
// required to resolve, expiry derived at read time.
type FollowUpService struct {
	repos *repositories.Repos
	locks *utils.AppLocks
	sink  EventSink
}

func NewFollowUpService(repos *repositories.Repos, locks *utils.AppLocks, sink EventSink) *FollowUpService {
	return &FollowUpService{repos: repos, locks: locks, sink: sink}
}

// RequirementOwner resolves the applicant who owns the application a
// requirement belongs to.
func (s *FollowUpService) RequirementOwner(requirementID uint) (uint, error) {
	req, err := s.repos.Document.GetRequirement(requirementID)
	if err != nil {
		return 0, asNotFound(err, "requirement %d", requirementID)
	}
	app, err := s.repos.Application.GetByID(req.ApplicationID)
	if err != nil {
		return 0, asNotFound(err, "application %d", req.ApplicationID)
	}
	return app.ApplicantID, nil
}

func (s *FollowUpService) Create(c *gin.Context, applicantID uint, input dto.CreateFollowUpDTO) (*models.FollowUpRequest, error) {
	req, err := s.repos.Document.GetRequirement(input.RequirementID)
	if err != nil {
		return nil, asNotFound(err, "requirement %d", input.RequirementID)
	}

	unlock := s.locks.Lock(req.ApplicationID)
	defer unlock()

	pending, err := s.repos.FollowUp.PendingByRequirement(req.ID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, models.NewError(models.KindDuplicatePending,
			"a pending follow-up already exists for requirement %d", req.ID)
	}

	followUp := &models.FollowUpRequest{
		RequirementID:    req.ID,
		ApplicationID:    req.ApplicationID,
		Message:          input.Message,
		AttachmentObject: input.AttachmentObject,
		Status:           models.FollowUpPending,
	}
	if err := s.repos.FollowUp.Create(followUp); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create_followup", "followup_request", itoa(followUp.ID),
		nil, followUp, "", s.repos.Audit)
	return followUp, nil
}

// Respond resolves a pending follow-up. Accepting extends the submission's
// implicit deadline by extensionDays; it never touches the submission's
// review status — a rejected document stays rejected until resubmission.
func (s *FollowUpService) Respond(c *gin.Context, responderID uint, requestID uint, input dto.RespondFollowUpDTO) (*models.FollowUpRequest, error) {
	followUp, err := s.repos.FollowUp.GetByID(requestID)
	if err != nil {
		return nil, asNotFound(err, "follow-up %d", requestID)
	}

	unlock := s.locks.Lock(followUp.ApplicationID)

	resolved, err := s.respondLocked(c, responderID, requestID, input)
	unlock()
	if err != nil {
		return nil, err
	}

	emitEvent(s.repos.Event, s.sink, models.EventFollowUpResolved, resolved.ApplicationID, map[string]any{
		"followup_id":        resolved.ID,
		"requirement_id":     resolved.RequirementID,
		"status":             resolved.Status,
		"extension_days":     resolved.ExtensionDays,
		"extension_deadline": resolved.ExtensionDeadline,
	})
	return resolved, nil
}

func (s *FollowUpService) respondLocked(c *gin.Context, responderID uint, requestID uint, input dto.RespondFollowUpDTO) (*models.FollowUpRequest, error) {
	followUp, err := s.repos.FollowUp.GetByID(requestID)
	if err != nil {
		return nil, asNotFound(err, "follow-up %d", requestID)
	}
	if followUp.IsResolved() {
		return nil, models.NewError(models.KindAlreadyResolved,
			"follow-up %d is already %s", requestID, followUp.Status)
	}
	if input.HRResponse == "" {
		return nil, models.NewError(models.KindValidation, "hr_response is required")
	}

	before := followUp
	now := time.Now()

	switch input.Decision {
	case DecisionAccept:
		if input.ExtensionDays < 1 {
			return nil, models.NewError(models.KindValidation, "extension_days must be at least 1")
		}
		deadline := now.AddDate(0, 0, input.ExtensionDays)
		followUp.Status = models.FollowUpAccepted
		followUp.ExtensionDays = input.ExtensionDays
		followUp.ExtensionDeadline = &deadline
	case DecisionReject:
		followUp.Status = models.FollowUpRejected
	default:
		return nil, models.NewError(models.KindValidation, "unknown decision %q", input.Decision)
	}

	followUp.HRResponse = input.HRResponse
	followUp.RespondedAt = &now
	followUp.ResponderID = &responderID

	if err := s.repos.FollowUp.Update(&followUp); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "respond_followup", "followup_request", itoa(followUp.ID),
		before, followUp, input.Decision, s.repos.Audit)
	return &followUp, nil
}

// FollowUpView is a FollowUpRequest plus its derived effective status.
type FollowUpView struct {
	models.FollowUpRequest
	EffectiveStatus models.FollowUpStatus `json:"effective_status"`
}

func (s *FollowUpService) ListByApplication(applicationID uint) ([]FollowUpView, error) {
	reqs, err := s.repos.FollowUp.ListByApplication(applicationID)
	if err != nil {
		return nil, err
	}
	window := time.Duration(config.FollowUpResponseDays) * 24 * time.Hour
	now := time.Now()
	views := make([]FollowUpView, 0, len(reqs))
	for _, r := range reqs {
		views = append(views, FollowUpView{
			FollowUpRequest: r,
			EffectiveStatus: r.EffectiveStatus(now, window),
		})
	}
	return views, nil
}

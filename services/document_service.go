package services

import (
	"context"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hrsuite/recruit-go/dto"
	"github.com/hrsuite/recruit-go/models"
	"github.com/hrsuite/recruit-go/repositories"
	"github.com/hrsuite/recruit-go/utils"
)

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// staleFollowUpResponse resolves a pending follow-up when the underlying
// submission gets rejected out from under it.
const staleFollowUpResponse = "Superseded: the related submission was rejected. Please resubmit the document."

// DocumentService tracks one current submission per requirement and the
// review actions applied to it.
type DocumentService struct {
	repos *repositories.Repos
	locks *utils.AppLocks
	sink  EventSink
}

func NewDocumentService(repos *repositories.Repos, locks *utils.AppLocks, sink EventSink) *DocumentService {
	return &DocumentService{repos: repos, locks: locks, sink: sink}
}

func (s *DocumentService) ListRequirements(applicationID uint) ([]models.DocumentRequirement, error) {
	return s.repos.Document.ListRequirements(applicationID)
}

// RequirementOwner resolves the applicant who owns the application a
// requirement belongs to.
func (s *DocumentService) RequirementOwner(requirementID uint) (uint, error) {
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

// Aggregate recomputes the derived document status from current child state.
func (s *DocumentService) Aggregate(applicationID uint) (models.AggregateDocumentStatus, error) {
	reqs, err := s.repos.Document.ListRequirements(applicationID)
	if err != nil {
		return "", err
	}
	subs, err := s.repos.Document.ListSubmissions(applicationID)
	if err != nil {
		return "", err
	}
	return models.DeriveAggregateStatus(reqs, subs), nil
}

func (s *DocumentService) CreateRequirement(c *gin.Context, input dto.CreateRequirementDTO) (*models.DocumentRequirement, error) {
	app, err := s.repos.Application.GetByID(input.ApplicationID)
	if err != nil {
		return nil, asNotFound(err, "application %d", input.ApplicationID)
	}
	if app.DocumentsStageStatus == models.DocumentsStageCompleted {
		return nil, models.NewError(models.KindRequirementLocked,
			"document stage already completed for application %d", app.ID)
	}

	required := true
	if input.IsRequired != nil {
		required = *input.IsRequired
	}
	maxSize := input.MaxFileSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	count, err := s.repos.Document.CountRequirements(app.ID)
	if err != nil {
		return nil, err
	}

	req := &models.DocumentRequirement{
		ApplicationID: app.ID,
		DocumentName:  input.DocumentName,
		Description:   input.Description,
		IsRequired:    required,
		FileFormats:   input.FileFormats,
		MaxFileSizeMB: maxSize,
		DisplayOrder:  int(count),
	}
	if err := s.repos.Document.CreateRequirement(req); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create_requirement", "document_requirement", itoa(req.ID),
		nil, req, req.DocumentName, s.repos.Audit)
	return req, nil
}

// DeleteRequirement removes a requirement. Once a submission exists the
// delete needs the staff override flag (the "remove request" path).
func (s *DocumentService) DeleteRequirement(c *gin.Context, id uint, override bool) error {
	req, err := s.repos.Document.GetRequirement(id)
	if err != nil {
		return asNotFound(err, "requirement %d", id)
	}
	sub, err := s.repos.Document.GetSubmissionByRequirement(req.ID)
	if err != nil {
		return err
	}
	if sub != nil && !override {
		return models.NewError(models.KindRequirementLocked,
			"requirement %d has a submission; staff override required", id)
	}

	if err := s.repos.Document.DeleteRequirement(id); err != nil {
		return err
	}
	utils.LogAuditWithConsole(c, "delete_requirement", "document_requirement", itoa(id),
		req, nil, req.DocumentName, s.repos.Audit)
	return nil
}

// Submit creates or replaces the current submission for a requirement. The
// blob upload happens before the per-application critical section; only the
// record write is serialized.
func (s *DocumentService) Submit(c *gin.Context, requirementID uint, input dto.SubmitDocumentDTO, content io.Reader) (*models.DocumentSubmission, error) {
	req, err := s.repos.Document.GetRequirement(requirementID)
	if err != nil {
		return nil, asNotFound(err, "requirement %d", requirementID)
	}
	app, err := s.repos.Application.GetByID(req.ApplicationID)
	if err != nil {
		return nil, asNotFound(err, "application %d", req.ApplicationID)
	}
	if app.DocumentsStageStatus == models.DocumentsStageCompleted {
		return nil, models.NewError(models.KindRequirementLocked,
			"document stage already completed; re-upload is not allowed")
	}
	if !req.AllowsFormat(input.FileName) {
		return nil, models.NewError(models.KindValidation,
			"file format not allowed for %s (allowed: %v)", req.DocumentName, []string(req.FileFormats))
	}
	if req.MaxFileSizeMB > 0 && input.FileSizeBytes > int64(req.MaxFileSizeMB)*1024*1024 {
		return nil, models.NewError(models.KindValidation,
			"file exceeds %d MB limit", req.MaxFileSizeMB)
	}

	objectName := utils.NewObjectName(app.ID, input.FileName)
	if content != nil {
		if err := utils.UploadObject(context.Background(), objectName, input.ContentType, content, input.FileSizeBytes); err != nil {
			return nil, err
		}
	}

	unlock := s.locks.Lock(app.ID)
	defer unlock()

	sub, err := s.repos.Document.GetSubmissionByRequirement(req.ID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		sub = &models.DocumentSubmission{
			RequirementID: req.ID,
			ApplicationID: app.ID,
		}
	}
	sub.ObjectName = objectName
	sub.FileName = input.FileName
	sub.FileSizeBytes = input.FileSizeBytes
	sub.DeclaredIdentifier = input.DeclaredIdentifier
	sub.SubmittedAt = time.Now()
	sub.Status = models.SubmissionPendingReview
	sub.RejectionReason = ""
	sub.ReviewedAt = nil
	sub.ReviewerID = nil

	if err := s.repos.Document.SaveSubmission(sub); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "submit_document", "document_submission", itoa(sub.ID),
		nil, sub, req.DocumentName, s.repos.Audit)
	return sub, nil
}

// Review applies an approve or reject decision. Approve is guarded by
// AlreadyApproved on re-invocation; reject requires a reason and marks any
// pending follow-up on the same requirement stale.
func (s *DocumentService) Review(c *gin.Context, submissionID uint, input dto.ReviewDocumentDTO, reviewerID uint) (*models.DocumentSubmission, models.AggregateDocumentStatus, error) {
	sub, err := s.repos.Document.GetSubmission(submissionID)
	if err != nil {
		return nil, "", asNotFound(err, "submission %d", submissionID)
	}

	unlock := s.locks.Lock(sub.ApplicationID)

	reviewed, aggregate, err := s.reviewLocked(c, sub.ApplicationID, submissionID, input, reviewerID)
	unlock()
	if err != nil {
		return nil, "", err
	}

	emitEvent(s.repos.Event, s.sink, models.EventDocumentReviewed, reviewed.ApplicationID, map[string]any{
		"submission_id":    reviewed.ID,
		"requirement_id":   reviewed.RequirementID,
		"status":           reviewed.Status,
		"rejection_reason": reviewed.RejectionReason,
		"aggregate":        aggregate,
	})
	return reviewed, aggregate, nil
}

func (s *DocumentService) reviewLocked(c *gin.Context, applicationID, submissionID uint, input dto.ReviewDocumentDTO, reviewerID uint) (*models.DocumentSubmission, models.AggregateDocumentStatus, error) {
	sub, err := s.repos.Document.GetSubmission(submissionID)
	if err != nil {
		return nil, "", asNotFound(err, "submission %d", submissionID)
	}

	before := sub
	now := time.Now()

	switch input.Decision {
	case DecisionApprove:
		if sub.Status.IsApproved() {
			return nil, "", models.NewError(models.KindAlreadyApproved,
				"submission %d is already approved", submissionID)
		}
		if !sub.Status.Reviewable() {
			return nil, "", models.NewError(models.KindInvalidTransition,
				"cannot approve a submission in status %s", sub.Status)
		}
		sub.Status = models.SubmissionApproved
		sub.RejectionReason = ""
	case DecisionReject:
		if input.Reason == "" {
			return nil, "", models.NewError(models.KindValidation, "rejection reason is required")
		}
		sub.Status = models.SubmissionRejected
		sub.RejectionReason = input.Reason
	default:
		return nil, "", models.NewError(models.KindValidation, "unknown decision %q", input.Decision)
	}

	sub.ReviewedAt = &now
	sub.ReviewerID = &reviewerID

	if err := s.repos.Document.SaveSubmission(&sub); err != nil {
		return nil, "", err
	}

	if input.Decision == DecisionReject {
		if err := s.staleFollowUp(sub.RequirementID, reviewerID, now); err != nil {
			return nil, "", err
		}
	}

	reqs, err := s.repos.Document.ListRequirements(applicationID)
	if err != nil {
		return nil, "", err
	}
	subs, err := s.repos.Document.ListSubmissions(applicationID)
	if err != nil {
		return nil, "", err
	}
	aggregate := models.DeriveAggregateStatus(reqs, subs)

	utils.LogAuditWithConsole(c, "review_document", "document_submission", itoa(sub.ID),
		before, sub, input.Decision, s.repos.Audit)
	return &sub, aggregate, nil
}

func (s *DocumentService) staleFollowUp(requirementID, reviewerID uint, now time.Time) error {
	pending, err := s.repos.FollowUp.PendingByRequirement(requirementID)
	if err != nil || pending == nil {
		return err
	}
	pending.Status = models.FollowUpRejected
	pending.HRResponse = staleFollowUpResponse
	pending.RespondedAt = &now
	pending.ResponderID = &reviewerID
	return s.repos.FollowUp.Update(pending)
}

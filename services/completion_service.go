package services

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hrsuite/recruit-go/dto"
	"github.com/hrsuite/recruit-go/models"
	"github.com/hrsuite/recruit-go/repositories"
	"github.com/hrsuite/recruit-go/utils"
)

const (
	BenefitsModeSave   = "save"
	BenefitsModeSubmit = "submit"
)

// CompletionService is the gate between stages: it decides when the document
// stage may close and when a completed benefits enrollment queues a profile
// creation entry.
type CompletionService struct {
	repos *repositories.Repos
	locks *utils.AppLocks
	sink  EventSink
}

func NewCompletionService(repos *repositories.Repos, locks *utils.AppLocks, sink EventSink) *CompletionService {
	return &CompletionService{repos: repos, locks: locks, sink: sink}
}

// CompleteDocumentStage closes the document stage once every required
// requirement is approved. Idempotent: concurrent "Mark as Done" clicks after
// completion get the already-completed application back, not an error.
func (s *CompletionService) CompleteDocumentStage(c *gin.Context, id uint, actorID uint) (models.Application, error) {
	unlock := s.locks.Lock(id)

	app, completedNow, err := s.completeDocumentsLocked(c, id, actorID)
	unlock()
	if err != nil {
		return models.Application{}, err
	}

	if completedNow {
		emitEvent(s.repos.Event, s.sink, models.EventStageAdvanced, app.ID, map[string]any{
			"status":       app.Status,
			"applicant_id": app.ApplicantID,
			"actor_id":     actorID,
		})
	}
	return app, nil
}

func (s *CompletionService) completeDocumentsLocked(c *gin.Context, id uint, actorID uint) (models.Application, bool, error) {
	app, err := s.repos.Application.GetByID(id)
	if err != nil {
		return models.Application{}, false, asNotFound(err, "application %d", id)
	}
	if app.DocumentsStageStatus == models.DocumentsStageCompleted {
		return app, false, nil
	}

	reqs, err := s.repos.Document.ListRequirements(app.ID)
	if err != nil {
		return models.Application{}, false, err
	}
	subs, err := s.repos.Document.ListSubmissions(app.ID)
	if err != nil {
		return models.Application{}, false, err
	}
	if models.DeriveAggregateStatus(reqs, subs) != models.AggregateApproved {
		return models.Application{}, false, models.NewError(models.KindIncompleteRequirements,
			"not all required documents are approved for application %d", id)
	}
	if !models.CanTransition(app.Status, models.StatusBenefits) {
		return models.Application{}, false, models.NewError(models.KindInvalidTransition,
			"cannot complete document stage while %s", app.Status)
	}

	before := app
	now := time.Now()
	app.DocumentsStageStatus = models.DocumentsStageCompleted
	app.DocumentsCompletedAt = &now
	app.Status = models.StatusBenefits
	app.IsInBenefitsEnroll = true
	app.BenefitsStatus = models.EnrollmentPending
	app.LastTransitionAt = &now

	if err := s.repos.Application.Update(&app); err != nil {
		return models.Application{}, false, err
	}

	utils.LogAuditWithConsole(c, "complete_document_stage", "application", itoa(app.ID),
		before, app, "", s.repos.Audit)
	return app, true, nil
}

// ApplicationOwner resolves the applicant who owns an application.
func (s *CompletionService) ApplicationOwner(id uint) (uint, error) {
	app, err := s.repos.Application.GetByID(id)
	if err != nil {
		return 0, asNotFound(err, "application %d", id)
	}
	return app.ApplicantID, nil
}

// GetBenefitsEnrollment lazily creates the enrollment record on first access
// to the Benefits Enroll stage, pre-populating government-ID fields from the
// declared identifiers on approved submissions.
func (s *CompletionService) GetBenefitsEnrollment(id uint) (*models.BenefitsEnrollment, error) {
	app, err := s.repos.Application.GetByID(id)
	if err != nil {
		return nil, asNotFound(err, "application %d", id)
	}
	if !app.IsInBenefitsEnroll && !models.ReachedBenefits(app.Status) {
		return nil, models.NewError(models.KindInvalidTransition,
			"application %d has not reached benefits enrollment", id)
	}

	unlock := s.locks.Lock(app.ID)
	defer unlock()

	return s.getOrCreateEnrollmentLocked(app.ID)
}

func (s *CompletionService) getOrCreateEnrollmentLocked(applicationID uint) (*models.BenefitsEnrollment, error) {
	enrollment, err := s.repos.Benefits.GetByApplicationID(applicationID)
	if err != nil {
		return nil, err
	}
	if enrollment != nil {
		return enrollment, nil
	}

	enrollment = &models.BenefitsEnrollment{
		ApplicationID: applicationID,
		Status:        models.EnrollmentPending,
	}
	s.prefillGovernmentIDs(applicationID, enrollment)
	if err := s.repos.Benefits.Save(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *CompletionService) prefillGovernmentIDs(applicationID uint, enrollment *models.BenefitsEnrollment) {
	reqs, err := s.repos.Document.ListRequirements(applicationID)
	if err != nil {
		return
	}
	for i := range reqs {
		sub := reqs[i].Submission
		if sub == nil || !sub.Status.IsApproved() || sub.DeclaredIdentifier == "" {
			continue
		}
		switch reqs[i].DocumentKey {
		case "sss":
			enrollment.SSS = sub.DeclaredIdentifier
		case "philhealth":
			enrollment.PhilHealth = sub.DeclaredIdentifier
		case "pagibig":
			enrollment.PagIbig = sub.DeclaredIdentifier
		case "tin":
			enrollment.TIN = sub.DeclaredIdentifier
		}
	}
}

// SaveBenefitsEnrollment persists enrollment fields. Mode "save" stores
// partial data without validation; mode "submit" validates, completes the
// enrollment, advances the application to ProfileCreation and queues the
// profile entry exactly once.
func (s *CompletionService) SaveBenefitsEnrollment(c *gin.Context, id uint, input dto.SaveBenefitsDTO, actorID uint) (*models.BenefitsEnrollment, error) {
	if input.Mode != BenefitsModeSave && input.Mode != BenefitsModeSubmit {
		return nil, models.NewError(models.KindValidation, "mode must be %q or %q", BenefitsModeSave, BenefitsModeSubmit)
	}

	app, err := s.repos.Application.GetByID(id)
	if err != nil {
		return nil, asNotFound(err, "application %d", id)
	}
	if !app.IsInBenefitsEnroll && !models.ReachedBenefits(app.Status) {
		return nil, models.NewError(models.KindInvalidTransition,
			"application %d has not reached benefits enrollment", id)
	}

	unlock := s.locks.Lock(id)

	enrollment, queued, err := s.saveBenefitsLocked(c, id, input, actorID)
	unlock()
	if err != nil {
		return nil, err
	}

	if queued {
		emitEvent(s.repos.Event, s.sink, models.EventProfileCreationQueue, id, map[string]any{
			"actor_id": actorID,
		})
	}
	return enrollment, nil
}

func (s *CompletionService) saveBenefitsLocked(c *gin.Context, id uint, input dto.SaveBenefitsDTO, actorID uint) (*models.BenefitsEnrollment, bool, error) {
	enrollment, err := s.getOrCreateEnrollmentLocked(id)
	if err != nil {
		return nil, false, err
	}
	if enrollment.Status == models.EnrollmentCompleted {
		if input.Mode == BenefitsModeSave {
			return nil, false, models.NewError(models.KindAlreadyCompleted,
				"benefits enrollment for application %d is already completed", id)
		}
		// idempotent re-submit: entry is already queued
		return enrollment, false, nil
	}

	before := *enrollment
	if input.EnrollmentDate != nil {
		enrollment.EnrollmentDate = input.EnrollmentDate
	}
	if input.MembershipProof != "" {
		enrollment.MembershipProof = input.MembershipProof
	}

	if input.Mode == BenefitsModeSave {
		enrollment.Status = models.EnrollmentInProgress
		if err := s.repos.Benefits.Save(enrollment); err != nil {
			return nil, false, err
		}
		if err := s.syncApplicationBenefits(id, models.EnrollmentInProgress, false); err != nil {
			return nil, false, err
		}
		utils.LogAuditWithConsole(c, "save_benefits", "benefits_enrollment", itoa(enrollment.ID),
			before, enrollment, input.Mode, s.repos.Audit)
		return enrollment, false, nil
	}

	if enrollment.EnrollmentDate == nil {
		return nil, false, models.NewError(models.KindValidation, "enrollment_date is required to submit")
	}

	enrollment.Status = models.EnrollmentCompleted
	if err := s.repos.Benefits.Save(enrollment); err != nil {
		return nil, false, err
	}
	if err := s.syncApplicationBenefits(id, models.EnrollmentCompleted, true); err != nil {
		return nil, false, err
	}

	queued, err := s.queueProfileEntry(id)
	if err != nil {
		return nil, false, err
	}

	utils.LogAuditWithConsole(c, "submit_benefits", "benefits_enrollment", itoa(enrollment.ID),
		before, enrollment, input.Mode, s.repos.Audit)
	return enrollment, queued, nil
}

func (s *CompletionService) syncApplicationBenefits(id uint, status models.EnrollmentStatus, advance bool) error {
	app, err := s.repos.Application.GetByID(id)
	if err != nil {
		return asNotFound(err, "application %d", id)
	}
	app.BenefitsStatus = status
	if advance && models.CanTransition(app.Status, models.StatusProfile) {
		now := time.Now()
		app.Status = models.StatusProfile
		app.IsInBenefitsEnroll = false
		app.LastTransitionAt = &now
	}
	return s.repos.Application.Update(&app)
}

// queueProfileEntry is a no-op when the entry already exists.
func (s *CompletionService) queueProfileEntry(applicationID uint) (bool, error) {
	existing, err := s.repos.Benefits.GetProfileEntry(applicationID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	entry := &models.ProfileCreationEntry{
		ApplicationID: applicationID,
		Snapshot:      []byte("{}"),
	}
	return true, s.repos.Benefits.SaveProfileEntry(entry)
}

// SaveProfileEntry re-edits the queued snapshot through the profile form.
func (s *CompletionService) SaveProfileEntry(c *gin.Context, id uint, input dto.SaveProfileEntryDTO, actorID uint) (*models.ProfileCreationEntry, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	entry, err := s.repos.Benefits.GetProfileEntry(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, models.NewError(models.KindNotFound, "no profile entry queued for application %d", id)
	}

	if input.Snapshot != nil {
		raw, err := json.Marshal(input.Snapshot)
		if err != nil {
			return nil, models.NewError(models.KindValidation, "invalid snapshot: %v", err)
		}
		entry.Snapshot = raw
	}
	if input.ProfilePhotoObject != "" {
		entry.ProfilePhotoObject = input.ProfilePhotoObject
	}
	now := time.Now()
	entry.ProfileDataUpdatedAt = &now

	if err := s.repos.Benefits.SaveProfileEntry(entry); err != nil {
		return nil, err
	}
	utils.LogAuditWithConsole(c, "save_profile_entry", "profile_creation_entry", itoa(entry.ID),
		nil, entry, "", s.repos.Audit)
	return entry, nil
}

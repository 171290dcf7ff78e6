package services

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hrsuite/recruit-go/catalog"
	"github.com/hrsuite/recruit-go/dto"
	"github.com/hrsuite/recruit-go/models"
	"github.com/hrsuite/recruit-go/repositories"
	"github.com/hrsuite/recruit-go/utils"
)

// ApplicationService is the stage state machine. Every status change goes
// through the fixed adjacency table in models; stage-entry hooks run inside
// the same per-application critical section as the transition itself.
type ApplicationService struct {
	repos *repositories.Repos
	locks *utils.AppLocks
	sink  EventSink
}

func NewApplicationService(repos *repositories.Repos, locks *utils.AppLocks, sink EventSink) *ApplicationService {
	return &ApplicationService{repos: repos, locks: locks, sink: sink}
}

func (s *ApplicationService) Create(applicantID uint, input dto.CreateApplicationDTO) (*models.Application, error) {
	app := &models.Application{
		ApplicantID: applicantID,
		PostingRef:  input.PostingRef,
		Status:      models.StatusPending,
	}
	return app, s.repos.Application.Create(app)
}

func (s *ApplicationService) Get(id uint) (models.Application, error) {
	app, err := s.repos.Application.GetByID(id)
	if err != nil {
		return models.Application{}, asNotFound(err, "application %d", id)
	}
	return app, nil
}

func (s *ApplicationService) List(filter dto.ApplicationFilter) ([]models.Application, error) {
	return s.repos.Application.List(filter)
}

// Advance moves an application along one edge of the adjacency table. On
// entering DocumentSubmission it seeds the built-in requirement catalog if
// the application has none yet.
func (s *ApplicationService) Advance(c *gin.Context, id uint, target models.ApplicationStatus, actorID uint) (models.Application, error) {
	unlock := s.locks.Lock(id)

	app, err := s.advanceLocked(c, id, target, actorID)
	unlock()
	if err != nil {
		return models.Application{}, err
	}

	emitEvent(s.repos.Event, s.sink, models.EventStageAdvanced, app.ID, map[string]any{
		"status":       app.Status,
		"applicant_id": app.ApplicantID,
		"actor_id":     actorID,
	})
	return app, nil
}

func (s *ApplicationService) advanceLocked(c *gin.Context, id uint, target models.ApplicationStatus, actorID uint) (models.Application, error) {
	app, err := s.repos.Application.GetByID(id)
	if err != nil {
		return models.Application{}, asNotFound(err, "application %d", id)
	}
	if !models.IsKnownStatus(target) {
		return models.Application{}, models.NewError(models.KindValidation, "unknown status %q", target)
	}
	if target == models.StatusOffered {
		// Offers carry position and salary and stamp OfferSentAt; they
		// only go out through SendOffer.
		return models.Application{}, models.NewError(models.KindInvalidTransition,
			"offers are issued through the offer endpoint")
	}
	if !models.CanTransition(app.Status, target) {
		return models.Application{}, models.NewError(models.KindInvalidTransition,
			"cannot advance from %s to %s", app.Status, target)
	}

	before := app
	now := time.Now()
	app.Status = target
	app.LastTransitionAt = &now

	if err := s.repos.Application.Update(&app); err != nil {
		return models.Application{}, err
	}

	if target == models.StatusDocumentSub {
		if err := s.seedRequirements(app.ID); err != nil {
			return models.Application{}, err
		}
	}

	utils.LogAuditWithConsole(c, "advance_status", "application", itoa(app.ID),
		before, app, string(target), s.repos.Audit)
	return app, nil
}

// seedRequirements is the DocumentSubmission stage-entry hook. It is a no-op
// when the application already has requirements (re-entry or manual seed).
func (s *ApplicationService) seedRequirements(applicationID uint) error {
	count, err := s.repos.Document.CountRequirements(applicationID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	reqs, err := catalog.BuiltInRequirements(applicationID)
	if err != nil {
		return err
	}
	return s.repos.Document.CreateRequirements(reqs)
}

// ScheduleInterview sets or updates interview details. Invoked while
// ShortListed it implicitly advances the application to Interview; invoked
// while already in Interview it reschedules in place.
func (s *ApplicationService) ScheduleInterview(c *gin.Context, id uint, input dto.ScheduleInterviewDTO, actorID uint) (models.Application, error) {
	unlock := s.locks.Lock(id)

	app, advanced, err := s.scheduleLocked(c, id, input, actorID)
	unlock()
	if err != nil {
		return models.Application{}, err
	}

	if advanced {
		emitEvent(s.repos.Event, s.sink, models.EventStageAdvanced, app.ID, map[string]any{
			"status":       app.Status,
			"applicant_id": app.ApplicantID,
			"actor_id":     actorID,
		})
	}
	return app, nil
}

func (s *ApplicationService) scheduleLocked(c *gin.Context, id uint, input dto.ScheduleInterviewDTO, actorID uint) (models.Application, bool, error) {
	app, err := s.repos.Application.GetByID(id)
	if err != nil {
		return models.Application{}, false, asNotFound(err, "application %d", id)
	}

	advanced := false
	switch app.Status {
	case models.StatusShortListed:
		now := time.Now()
		app.Status = models.StatusInterview
		app.LastTransitionAt = &now
		advanced = true
	case models.StatusInterview:
		// reschedule, same-state mutation
	default:
		return models.Application{}, false, models.NewError(models.KindInvalidTransition,
			"cannot schedule interview while %s", app.Status)
	}

	iv, err := s.repos.Application.GetInterview(app.ID)
	if err != nil {
		return models.Application{}, false, err
	}
	if iv == nil {
		iv = &models.Interview{ApplicationID: app.ID}
	} else {
		iv.Rescheduled++
	}
	iv.ScheduledAt = input.ScheduledAt
	iv.Location = input.Location
	iv.Interviewer = input.Interviewer
	iv.Mode = input.Mode

	if err := s.repos.Application.SaveInterview(iv); err != nil {
		return models.Application{}, false, err
	}
	if advanced {
		if err := s.repos.Application.Update(&app); err != nil {
			return models.Application{}, false, err
		}
	}
	app.Interview = iv

	utils.LogAuditWithConsole(c, "schedule_interview", "application", itoa(app.ID),
		nil, iv, "", s.repos.Audit)
	return app, advanced, nil
}

// ScheduleBatch fans the same interview details out over many applications.
// Items fail or succeed independently; a wrong-status application is reported
// in its result slot and leaves that application untouched.
func (s *ApplicationService) ScheduleBatch(c *gin.Context, input dto.ScheduleBatchDTO, actorID uint) []dto.BatchItemResult {
	results := make([]dto.BatchItemResult, 0, len(input.ApplicationIDs))
	for _, id := range input.ApplicationIDs {
		_, err := s.ScheduleInterview(c, id, input.Details, actorID)
		item := dto.BatchItemResult{ApplicationID: id, OK: err == nil}
		if err != nil {
			item.Error = err.Error()
		}
		results = append(results, item)
	}
	return results
}

// SendOffer issues the offer exactly once. A second invocation fails with
// AlreadyOffered instead of silently resending.
func (s *ApplicationService) SendOffer(c *gin.Context, id uint, input dto.SendOfferDTO, actorID uint) (models.Application, error) {
	unlock := s.locks.Lock(id)

	app, err := s.sendOfferLocked(c, id, input, actorID)
	unlock()
	if err != nil {
		return models.Application{}, err
	}

	emitEvent(s.repos.Event, s.sink, models.EventStageAdvanced, app.ID, map[string]any{
		"status":       app.Status,
		"applicant_id": app.ApplicantID,
		"actor_id":     actorID,
		"position":     app.OfferPosition,
	})
	return app, nil
}

func (s *ApplicationService) sendOfferLocked(c *gin.Context, id uint, input dto.SendOfferDTO, actorID uint) (models.Application, error) {
	app, err := s.repos.Application.GetByID(id)
	if err != nil {
		return models.Application{}, asNotFound(err, "application %d", id)
	}
	if app.OfferSentAt != nil {
		return models.Application{}, models.NewError(models.KindAlreadyOffered,
			"offer already sent for application %d", id)
	}
	if !models.CanTransition(app.Status, models.StatusOffered) {
		return models.Application{}, models.NewError(models.KindInvalidTransition,
			"cannot send offer while %s", app.Status)
	}

	before := app
	now := time.Now()
	app.Status = models.StatusOffered
	app.OfferSentAt = &now
	app.LastTransitionAt = &now
	app.OfferPosition = input.Position
	app.OfferSalary = input.Salary

	if err := s.repos.Application.Update(&app); err != nil {
		return models.Application{}, err
	}

	utils.LogAuditWithConsole(c, "send_offer", "application", itoa(app.ID),
		before, app, input.Position, s.repos.Audit)
	return app, nil
}

// asNotFound maps gorm's record-not-found onto the engine taxonomy and
// passes other repository errors through untouched.
func asNotFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewError(models.KindNotFound, format, args...)
	}
	return err
}

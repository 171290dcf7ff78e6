package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"gorm.io/gorm"

	"github.com/hrsuite/recruit-go/dto"
	"github.com/hrsuite/recruit-go/models"
	"github.com/hrsuite/recruit-go/repositories"
	"github.com/hrsuite/recruit-go/repositories/mock_repositories"
	"github.com/hrsuite/recruit-go/utils"
)

func setupCompletionMocks(t *testing.T) (*CompletionService,
	*mock_repositories.MockApplicationRepo,
	*mock_repositories.MockDocumentRepo,
	*mock_repositories.MockBenefitsRepo,
	*mock_repositories.MockEventRepo,
	*gin.Context) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockApp := mock_repositories.NewMockApplicationRepo(ctrl)
	mockDoc := mock_repositories.NewMockDocumentRepo(ctrl)
	mockBenefits := mock_repositories.NewMockBenefitsRepo(ctrl)
	mockEvent := mock_repositories.NewMockEventRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)

	repos := &repositories.Repos{
		Application: mockApp,
		Document:    mockDoc,
		Benefits:    mockBenefits,
		Event:       mockEvent,
		Audit:       mockAudit,
	}
	svc := NewCompletionService(repos, utils.NewAppLocks(), nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repo repositories.AuditRepo) {
	}

	return svc, mockApp, mockDoc, mockBenefits, mockEvent, c
}

func approvedSet(appID uint) ([]models.DocumentRequirement, []models.DocumentSubmission) {
	reqs := []models.DocumentRequirement{
		{Model: gorm.Model{ID: 10}, ApplicationID: appID, DocumentName: "A", IsRequired: true},
		{Model: gorm.Model{ID: 11}, ApplicationID: appID, DocumentName: "B", IsRequired: true},
	}
	subs := []models.DocumentSubmission{
		{RequirementID: 10, ApplicationID: appID, Status: models.SubmissionApproved},
		{RequirementID: 11, ApplicationID: appID, Status: models.SubmissionApproved},
	}
	return reqs, subs
}

func TestCompleteDocumentStage(t *testing.T) {
	t.Run("all approved closes the stage and enters benefits", func(t *testing.T) {
		svc, mockApp, mockDoc, _, mockEvent, c := setupCompletionMocks(t)

		reqs, subs := approvedSet(1)
		mockApp.EXPECT().GetByID(uint(1)).Return(appAt(1, models.StatusDocumentSub), nil)
		mockDoc.EXPECT().ListRequirements(uint(1)).Return(reqs, nil)
		mockDoc.EXPECT().ListSubmissions(uint(1)).Return(subs, nil)
		mockApp.EXPECT().Update(gomock.Any()).Return(nil)
		mockEvent.EXPECT().Create(gomock.Any()).Return(nil)

		got, err := svc.CompleteDocumentStage(c, 1, 99)
		if err != nil {
			t.Fatalf("CompleteDocumentStage failed: %v", err)
		}
		if got.Status != models.StatusBenefits {
			t.Fatalf("status = %s, want BenefitsEnroll", got.Status)
		}
		if got.DocumentsStageStatus != models.DocumentsStageCompleted || got.DocumentsCompletedAt == nil {
			t.Fatalf("completion markers not set: %+v", got)
		}
		if !got.IsInBenefitsEnroll || got.BenefitsStatus != models.EnrollmentPending {
			t.Fatalf("benefits stage not initialized: %+v", got)
		}
	})

	t.Run("pending submission blocks completion", func(t *testing.T) {
		svc, mockApp, mockDoc, _, _, c := setupCompletionMocks(t)

		reqs, subs := approvedSet(1)
		subs[1].Status = models.SubmissionPendingReview
		mockApp.EXPECT().GetByID(uint(1)).Return(appAt(1, models.StatusDocumentSub), nil)
		mockDoc.EXPECT().ListRequirements(uint(1)).Return(reqs, nil)
		mockDoc.EXPECT().ListSubmissions(uint(1)).Return(subs, nil)

		_, err := svc.CompleteDocumentStage(c, 1, 99)
		if !models.IsKind(err, models.KindIncompleteRequirements) {
			t.Fatalf("got %v, want IncompleteRequirements", err)
		}
	})

	t.Run("repeat completion is a no-op", func(t *testing.T) {
		svc, mockApp, _, _, _, c := setupCompletionMocks(t)

		done := appAt(1, models.StatusBenefits)
		done.DocumentsStageStatus = models.DocumentsStageCompleted
		mockApp.EXPECT().GetByID(uint(1)).Return(done, nil)

		got, err := svc.CompleteDocumentStage(c, 1, 99)
		if err != nil {
			t.Fatalf("repeat completion errored: %v", err)
		}
		if got.Status != models.StatusBenefits {
			t.Fatalf("status = %s, want BenefitsEnroll", got.Status)
		}
	})

	t.Run("wrong stage", func(t *testing.T) {
		svc, mockApp, mockDoc, _, _, c := setupCompletionMocks(t)

		reqs, subs := approvedSet(1)
		mockApp.EXPECT().GetByID(uint(1)).Return(appAt(1, models.StatusInterview), nil)
		mockDoc.EXPECT().ListRequirements(uint(1)).Return(reqs, nil)
		mockDoc.EXPECT().ListSubmissions(uint(1)).Return(subs, nil)

		_, err := svc.CompleteDocumentStage(c, 1, 99)
		if !models.IsKind(err, models.KindInvalidTransition) {
			t.Fatalf("got %v, want InvalidTransition", err)
		}
	})
}

func benefitsApp(id uint) models.Application {
	app := appAt(id, models.StatusBenefits)
	app.DocumentsStageStatus = models.DocumentsStageCompleted
	app.IsInBenefitsEnroll = true
	app.BenefitsStatus = models.EnrollmentPending
	return app
}

func TestGetBenefitsEnrollment(t *testing.T) {
	t.Run("first access creates and prefills from declared identifiers", func(t *testing.T) {
		svc, mockApp, mockDoc, mockBenefits, _, _ := setupCompletionMocks(t)

		mockApp.EXPECT().GetByID(uint(1)).Return(benefitsApp(1), nil)
		mockBenefits.EXPECT().GetByApplicationID(uint(1)).Return(nil, nil)
		mockDoc.EXPECT().ListRequirements(uint(1)).Return([]models.DocumentRequirement{
			{
				Model: gorm.Model{ID: 10}, ApplicationID: 1, DocumentKey: "sss",
				Submission: &models.DocumentSubmission{Status: models.SubmissionApproved, DeclaredIdentifier: "34-1234567-8"},
			},
			{
				Model: gorm.Model{ID: 11}, ApplicationID: 1, DocumentKey: "tin",
				Submission: &models.DocumentSubmission{Status: models.SubmissionApproved, DeclaredIdentifier: "123-456-789-000"},
			},
			{
				// Not approved yet; its identifier must not leak into the form.
				Model: gorm.Model{ID: 12}, ApplicationID: 1, DocumentKey: "philhealth",
				Submission: &models.DocumentSubmission{Status: models.SubmissionPendingReview, DeclaredIdentifier: "11-22222222-3"},
			},
		}, nil)
		mockBenefits.EXPECT().Save(gomock.Any()).DoAndReturn(func(e *models.BenefitsEnrollment) error {
			e.ID = 1
			return nil
		})

		enrollment, err := svc.GetBenefitsEnrollment(1)
		if err != nil {
			t.Fatalf("GetBenefitsEnrollment failed: %v", err)
		}
		if enrollment.SSS != "34-1234567-8" || enrollment.TIN != "123-456-789-000" {
			t.Fatalf("identifiers not prefilled: %+v", enrollment)
		}
		if enrollment.PhilHealth != "" {
			t.Fatalf("unapproved identifier leaked: %q", enrollment.PhilHealth)
		}
		if enrollment.Status != models.EnrollmentPending {
			t.Fatalf("status = %s, want pending", enrollment.Status)
		}
	})

	t.Run("existing enrollment is returned as is", func(t *testing.T) {
		svc, mockApp, _, mockBenefits, _, _ := setupCompletionMocks(t)

		existing := &models.BenefitsEnrollment{ApplicationID: 1, Status: models.EnrollmentInProgress, SSS: "x"}
		mockApp.EXPECT().GetByID(uint(1)).Return(benefitsApp(1), nil)
		mockBenefits.EXPECT().GetByApplicationID(uint(1)).Return(existing, nil)

		enrollment, err := svc.GetBenefitsEnrollment(1)
		if err != nil {
			t.Fatalf("GetBenefitsEnrollment failed: %v", err)
		}
		if enrollment != existing {
			t.Fatal("expected the stored enrollment back")
		}
	})

	t.Run("before benefits stage", func(t *testing.T) {
		svc, mockApp, _, _, _, _ := setupCompletionMocks(t)

		mockApp.EXPECT().GetByID(uint(1)).Return(appAt(1, models.StatusInterview), nil)

		_, err := svc.GetBenefitsEnrollment(1)
		if !models.IsKind(err, models.KindInvalidTransition) {
			t.Fatalf("got %v, want InvalidTransition", err)
		}
	})

	t.Run("document stage still open", func(t *testing.T) {
		svc, mockApp, _, _, _, _ := setupCompletionMocks(t)

		mockApp.EXPECT().GetByID(uint(1)).Return(appAt(1, models.StatusDocumentSub), nil)

		_, err := svc.GetBenefitsEnrollment(1)
		if !models.IsKind(err, models.KindInvalidTransition) {
			t.Fatalf("got %v, want InvalidTransition", err)
		}
	})
}

func TestSaveBenefitsEnrollment(t *testing.T) {
	enrollDate := time.Now().AddDate(0, 0, -1)

	t.Run("save mode keeps the enrollment open", func(t *testing.T) {
		svc, mockApp, _, mockBenefits, _, c := setupCompletionMocks(t)

		mockApp.EXPECT().GetByID(uint(1)).Return(benefitsApp(1), nil).Times(2)
		mockBenefits.EXPECT().GetByApplicationID(uint(1)).Return(&models.BenefitsEnrollment{
			Model: gorm.Model{ID: 1}, ApplicationID: 1, Status: models.EnrollmentPending,
		}, nil)
		mockBenefits.EXPECT().Save(gomock.Any()).Return(nil)
		mockApp.EXPECT().Update(gomock.Any()).DoAndReturn(func(app *models.Application) error {
			if app.Status != models.StatusBenefits {
				t.Fatalf("save mode advanced the application to %s", app.Status)
			}
			if app.BenefitsStatus != models.EnrollmentInProgress {
				t.Fatalf("benefits status = %s, want in_progress", app.BenefitsStatus)
			}
			return nil
		})

		enrollment, err := svc.SaveBenefitsEnrollment(c, 1, dto.SaveBenefitsDTO{Mode: BenefitsModeSave}, 7)
		if err != nil {
			t.Fatalf("SaveBenefitsEnrollment failed: %v", err)
		}
		if enrollment.Status != models.EnrollmentInProgress {
			t.Fatalf("status = %s, want in_progress", enrollment.Status)
		}
	})

	t.Run("submit completes, advances and queues the profile entry once", func(t *testing.T) {
		svc, mockApp, _, mockBenefits, mockEvent, c := setupCompletionMocks(t)

		mockApp.EXPECT().GetByID(uint(1)).Return(benefitsApp(1), nil).Times(2)
		mockBenefits.EXPECT().GetByApplicationID(uint(1)).Return(&models.BenefitsEnrollment{
			Model: gorm.Model{ID: 1}, ApplicationID: 1, Status: models.EnrollmentInProgress,
		}, nil)
		mockBenefits.EXPECT().Save(gomock.Any()).Return(nil)
		mockApp.EXPECT().Update(gomock.Any()).DoAndReturn(func(app *models.Application) error {
			if app.Status != models.StatusProfile || app.IsInBenefitsEnroll {
				t.Fatalf("submit did not hand off to profile creation: %+v", app)
			}
			return nil
		})
		mockBenefits.EXPECT().GetProfileEntry(uint(1)).Return(nil, nil)
		mockBenefits.EXPECT().SaveProfileEntry(gomock.Any()).DoAndReturn(func(e *models.ProfileCreationEntry) error {
			if e.ApplicationID != 1 {
				t.Fatalf("entry bound to wrong application: %d", e.ApplicationID)
			}
			return nil
		})
		mockEvent.EXPECT().Create(gomock.Any()).Return(nil)

		enrollment, err := svc.SaveBenefitsEnrollment(c, 1, dto.SaveBenefitsDTO{
			Mode:           BenefitsModeSubmit,
			EnrollmentDate: &enrollDate,
		}, 7)
		if err != nil {
			t.Fatalf("SaveBenefitsEnrollment failed: %v", err)
		}
		if enrollment.Status != models.EnrollmentCompleted {
			t.Fatalf("status = %s, want completed", enrollment.Status)
		}
	})

	t.Run("submit without an enrollment date", func(t *testing.T) {
		svc, mockApp, _, mockBenefits, _, c := setupCompletionMocks(t)

		mockApp.EXPECT().GetByID(uint(1)).Return(benefitsApp(1), nil)
		mockBenefits.EXPECT().GetByApplicationID(uint(1)).Return(&models.BenefitsEnrollment{
			Model: gorm.Model{ID: 1}, ApplicationID: 1, Status: models.EnrollmentPending,
		}, nil)

		_, err := svc.SaveBenefitsEnrollment(c, 1, dto.SaveBenefitsDTO{Mode: BenefitsModeSubmit}, 7)
		if !models.IsKind(err, models.KindValidation) {
			t.Fatalf("got %v, want Validation", err)
		}
	})

	t.Run("re-submit after completion is idempotent", func(t *testing.T) {
		svc, mockApp, _, mockBenefits, _, c := setupCompletionMocks(t)

		app := benefitsApp(1)
		app.Status = models.StatusProfile
		app.IsInBenefitsEnroll = false
		mockApp.EXPECT().GetByID(uint(1)).Return(app, nil)
		mockBenefits.EXPECT().GetByApplicationID(uint(1)).Return(&models.BenefitsEnrollment{
			Model: gorm.Model{ID: 1}, ApplicationID: 1, Status: models.EnrollmentCompleted,
		}, nil)

		enrollment, err := svc.SaveBenefitsEnrollment(c, 1, dto.SaveBenefitsDTO{
			Mode:           BenefitsModeSubmit,
			EnrollmentDate: &enrollDate,
		}, 7)
		if err != nil {
			t.Fatalf("re-submit errored: %v", err)
		}
		if enrollment.Status != models.EnrollmentCompleted {
			t.Fatalf("status = %s, want completed", enrollment.Status)
		}
	})

	t.Run("save after completion is refused", func(t *testing.T) {
		svc, mockApp, _, mockBenefits, _, c := setupCompletionMocks(t)

		app := benefitsApp(1)
		app.Status = models.StatusProfile
		app.IsInBenefitsEnroll = false
		mockApp.EXPECT().GetByID(uint(1)).Return(app, nil)
		mockBenefits.EXPECT().GetByApplicationID(uint(1)).Return(&models.BenefitsEnrollment{
			Model: gorm.Model{ID: 1}, ApplicationID: 1, Status: models.EnrollmentCompleted,
		}, nil)

		_, err := svc.SaveBenefitsEnrollment(c, 1, dto.SaveBenefitsDTO{Mode: BenefitsModeSave}, 7)
		if !models.IsKind(err, models.KindAlreadyCompleted) {
			t.Fatalf("got %v, want AlreadyCompleted", err)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		svc, _, _, _, _, c := setupCompletionMocks(t)

		_, err := svc.SaveBenefitsEnrollment(c, 1, dto.SaveBenefitsDTO{Mode: "draft"}, 7)
		if !models.IsKind(err, models.KindValidation) {
			t.Fatalf("got %v, want Validation", err)
		}
	})

	t.Run("document stage still open", func(t *testing.T) {
		svc, mockApp, _, _, _, c := setupCompletionMocks(t)

		mockApp.EXPECT().GetByID(uint(1)).Return(appAt(1, models.StatusDocumentSub), nil)

		_, err := svc.SaveBenefitsEnrollment(c, 1, dto.SaveBenefitsDTO{
			Mode:           BenefitsModeSubmit,
			EnrollmentDate: &enrollDate,
		}, 7)
		if !models.IsKind(err, models.KindInvalidTransition) {
			t.Fatalf("got %v, want InvalidTransition", err)
		}
	})

	t.Run("save mode surfaces an application update failure", func(t *testing.T) {
		svc, mockApp, _, mockBenefits, _, c := setupCompletionMocks(t)

		boom := errors.New("db connection lost")
		mockApp.EXPECT().GetByID(uint(1)).Return(benefitsApp(1), nil).Times(2)
		mockBenefits.EXPECT().GetByApplicationID(uint(1)).Return(&models.BenefitsEnrollment{
			Model: gorm.Model{ID: 1}, ApplicationID: 1, Status: models.EnrollmentPending,
		}, nil)
		mockBenefits.EXPECT().Save(gomock.Any()).Return(nil)
		mockApp.EXPECT().Update(gomock.Any()).Return(boom)

		_, err := svc.SaveBenefitsEnrollment(c, 1, dto.SaveBenefitsDTO{Mode: BenefitsModeSave}, 7)
		if !errors.Is(err, boom) {
			t.Fatalf("got %v, want the update failure back", err)
		}
	})

	t.Run("submit stops before queueing when the update fails", func(t *testing.T) {
		svc, mockApp, _, mockBenefits, _, c := setupCompletionMocks(t)

		boom := errors.New("db connection lost")
		mockApp.EXPECT().GetByID(uint(1)).Return(benefitsApp(1), nil).Times(2)
		mockBenefits.EXPECT().GetByApplicationID(uint(1)).Return(&models.BenefitsEnrollment{
			Model: gorm.Model{ID: 1}, ApplicationID: 1, Status: models.EnrollmentInProgress,
		}, nil)
		mockBenefits.EXPECT().Save(gomock.Any()).Return(nil)
		mockApp.EXPECT().Update(gomock.Any()).Return(boom)

		_, err := svc.SaveBenefitsEnrollment(c, 1, dto.SaveBenefitsDTO{
			Mode:           BenefitsModeSubmit,
			EnrollmentDate: &enrollDate,
		}, 7)
		if !errors.Is(err, boom) {
			t.Fatalf("got %v, want the update failure back", err)
		}
	})
}

func TestSaveProfileEntry(t *testing.T) {
	t.Run("re-edit updates the snapshot", func(t *testing.T) {
		svc, _, _, mockBenefits, _, c := setupCompletionMocks(t)

		mockBenefits.EXPECT().GetProfileEntry(uint(1)).Return(&models.ProfileCreationEntry{
			Model: gorm.Model{ID: 1}, ApplicationID: 1, Snapshot: []byte("{}"),
		}, nil)
		mockBenefits.EXPECT().SaveProfileEntry(gomock.Any()).Return(nil)

		entry, err := svc.SaveProfileEntry(c, 1, dto.SaveProfileEntryDTO{
			Snapshot: map[string]any{"full_name": "Maria Santos"},
		}, 7)
		if err != nil {
			t.Fatalf("SaveProfileEntry failed: %v", err)
		}
		if entry.ProfileDataUpdatedAt == nil {
			t.Fatal("ProfileDataUpdatedAt not stamped")
		}
		if string(entry.Snapshot) == "{}" {
			t.Fatal("snapshot not replaced")
		}
	})

	t.Run("nothing queued yet", func(t *testing.T) {
		svc, _, _, mockBenefits, _, c := setupCompletionMocks(t)

		mockBenefits.EXPECT().GetProfileEntry(uint(1)).Return(nil, nil)

		_, err := svc.SaveProfileEntry(c, 1, dto.SaveProfileEntryDTO{}, 7)
		if !models.IsKind(err, models.KindNotFound) {
			t.Fatalf("got %v, want NotFound", err)
		}
	})
}

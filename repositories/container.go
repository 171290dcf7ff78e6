package repositories

import (
	"github.com/hrsuite/recruit-go/dto"
	"github.com/hrsuite/recruit-go/models"
)

type ApplicationRepo interface {
	Create(app *models.Application) error
	GetByID(id uint) (models.Application, error)
	List(filter dto.ApplicationFilter) ([]models.Application, error)
	Update(app *models.Application) error
	GetInterview(applicationID uint) (*models.Interview, error)
	SaveInterview(iv *models.Interview) error
}

type DocumentRepo interface {
	CreateRequirement(req *models.DocumentRequirement) error
	CreateRequirements(reqs []models.DocumentRequirement) error
	GetRequirement(id uint) (models.DocumentRequirement, error)
	ListRequirements(applicationID uint) ([]models.DocumentRequirement, error)
	CountRequirements(applicationID uint) (int64, error)
	DeleteRequirement(id uint) error
	GetSubmission(id uint) (models.DocumentSubmission, error)
	GetSubmissionByRequirement(requirementID uint) (*models.DocumentSubmission, error)
	ListSubmissions(applicationID uint) ([]models.DocumentSubmission, error)
	SaveSubmission(sub *models.DocumentSubmission) error
}

type FollowUpRepo interface {
	Create(req *models.FollowUpRequest) error
	GetByID(id uint) (models.FollowUpRequest, error)
	PendingByRequirement(requirementID uint) (*models.FollowUpRequest, error)
	ListByApplication(applicationID uint) ([]models.FollowUpRequest, error)
	Update(req *models.FollowUpRequest) error
}

type BenefitsRepo interface {
	GetByApplicationID(applicationID uint) (*models.BenefitsEnrollment, error)
	Save(enrollment *models.BenefitsEnrollment) error
	GetProfileEntry(applicationID uint) (*models.ProfileCreationEntry, error)
	SaveProfileEntry(entry *models.ProfileCreationEntry) error
}

type UserRepo interface {
	Create(user *models.User) error
	FindByUsername(username string) (models.User, error)
	FindByID(id uint) (models.User, error)
}

type EventRepo interface {
	Create(event *models.OutboundEvent) error
	Recent(limit int) ([]models.OutboundEvent, error)
}

type AuditRepo interface {
	CreateAuditLog(entry *models.AuditLog) error
	ListByResource(resourceType, resourceID string) ([]models.AuditLog, error)
}

type Repos struct {
	Application ApplicationRepo
	Document    DocumentRepo
	FollowUp    FollowUpRepo
	Benefits    BenefitsRepo
	User        UserRepo
	Event       EventRepo
	Audit       AuditRepo
}

func New() *Repos {
	return &Repos{
		Application: &DBApplicationRepo{},
		Document:    &DBDocumentRepo{},
		FollowUp:    &DBFollowUpRepo{},
		Benefits:    &DBBenefitsRepo{},
		User:        &DBUserRepo{},
		Event:       &DBEventRepo{},
		Audit:       &DBAuditRepo{},
	}
}

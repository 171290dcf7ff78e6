package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hrsuite/recruit-go/db"
	"github.com/hrsuite/recruit-go/models"
)

type DBDocumentRepo struct{}

func (r *DBDocumentRepo) CreateRequirement(req *models.DocumentRequirement) error {
	return db.DB.Create(req).Error
}

func (r *DBDocumentRepo) CreateRequirements(reqs []models.DocumentRequirement) error {
	if len(reqs) == 0 {
		return nil
	}
	return db.DB.Create(&reqs).Error
}

func (r *DBDocumentRepo) GetRequirement(id uint) (models.DocumentRequirement, error) {
	var req models.DocumentRequirement
	err := db.DB.Preload("Submission").First(&req, id).Error
	return req, err
}

func (r *DBDocumentRepo) ListRequirements(applicationID uint) ([]models.DocumentRequirement, error) {
	var reqs []models.DocumentRequirement
	err := db.DB.Where("application_id = ?", applicationID).
		Preload("Submission").
		Order("display_order asc, id asc").
		Find(&reqs).Error
	return reqs, err
}

func (r *DBDocumentRepo) CountRequirements(applicationID uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.DocumentRequirement{}).
		Where("application_id = ?", applicationID).
		Count(&count).Error
	return count, err
}

func (r *DBDocumentRepo) DeleteRequirement(id uint) error {
	return db.DB.Delete(&models.DocumentRequirement{}, id).Error
}

func (r *DBDocumentRepo) GetSubmission(id uint) (models.DocumentSubmission, error) {
	var sub models.DocumentSubmission
	err := db.DB.First(&sub, id).Error
	return sub, err
}

func (r *DBDocumentRepo) GetSubmissionByRequirement(requirementID uint) (*models.DocumentSubmission, error) {
	var sub models.DocumentSubmission
	err := db.DB.Where("requirement_id = ?", requirementID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *DBDocumentRepo) ListSubmissions(applicationID uint) ([]models.DocumentSubmission, error) {
	var subs []models.DocumentSubmission
	err := db.DB.Where("application_id = ?", applicationID).Find(&subs).Error
	return subs, err
}

func (r *DBDocumentRepo) SaveSubmission(sub *models.DocumentSubmission) error {
	return db.DB.Save(sub).Error
}

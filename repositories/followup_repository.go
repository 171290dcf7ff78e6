package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hrsuite/recruit-go/db"
	"github.com/hrsuite/recruit-go/models"
)

type DBFollowUpRepo struct{}

func (r *DBFollowUpRepo) Create(req *models.FollowUpRequest) error {
	return db.DB.Create(req).Error
}

func (r *DBFollowUpRepo) GetByID(id uint) (models.FollowUpRequest, error) {
	var req models.FollowUpRequest
	err := db.DB.First(&req, id).Error
	return req, err
}

func (r *DBFollowUpRepo) PendingByRequirement(requirementID uint) (*models.FollowUpRequest, error) {
	var req models.FollowUpRequest
	err := db.DB.Where("requirement_id = ? AND status = ?", requirementID, models.FollowUpPending).
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *DBFollowUpRepo) ListByApplication(applicationID uint) ([]models.FollowUpRequest, error) {
	var reqs []models.FollowUpRequest
	err := db.DB.Where("application_id = ?", applicationID).Order("created_at desc").Find(&reqs).Error
	return reqs, err
}

func (r *DBFollowUpRepo) Update(req *models.FollowUpRequest) error {
	return db.DB.Save(req).Error
}

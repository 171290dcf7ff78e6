package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hrsuite/recruit-go/db"
	"github.com/hrsuite/recruit-go/dto"
	"github.com/hrsuite/recruit-go/models"
)

type DBApplicationRepo struct{}

func (r *DBApplicationRepo) Create(app *models.Application) error {
	return db.DB.Create(app).Error
}

func (r *DBApplicationRepo) GetByID(id uint) (models.Application, error) {
	var app models.Application
	err := db.DB.Preload("Applicant").Preload("Interview").First(&app, id).Error
	return app, err
}

func (r *DBApplicationRepo) List(filter dto.ApplicationFilter) ([]models.Application, error) {
	var apps []models.Application
	q := db.DB.Preload("Applicant").Preload("Interview").Order("created_at desc")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ApplicantID != 0 {
		q = q.Where("applicant_id = ?", filter.ApplicantID)
	}
	if filter.PostingRef != "" {
		q = q.Where("posting_ref = ?", filter.PostingRef)
	}
	err := q.Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) Update(app *models.Application) error {
	return db.DB.Save(app).Error
}

func (r *DBApplicationRepo) GetInterview(applicationID uint) (*models.Interview, error) {
	var iv models.Interview
	err := db.DB.Where("application_id = ?", applicationID).First(&iv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *DBApplicationRepo) SaveInterview(iv *models.Interview) error {
	return db.DB.Save(iv).Error
}

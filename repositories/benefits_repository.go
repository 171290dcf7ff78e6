package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hrsuite/recruit-go/db"
	"github.com/hrsuite/recruit-go/models"
)

type DBBenefitsRepo struct{}

func (r *DBBenefitsRepo) GetByApplicationID(applicationID uint) (*models.BenefitsEnrollment, error) {
	var enrollment models.BenefitsEnrollment
	err := db.DB.Where("application_id = ?", applicationID).First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *DBBenefitsRepo) Save(enrollment *models.BenefitsEnrollment) error {
	return db.DB.Save(enrollment).Error
}

func (r *DBBenefitsRepo) GetProfileEntry(applicationID uint) (*models.ProfileCreationEntry, error) {
	var entry models.ProfileCreationEntry
	err := db.DB.Where("application_id = ?", applicationID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *DBBenefitsRepo) SaveProfileEntry(entry *models.ProfileCreationEntry) error {
	return db.DB.Save(entry).Error
}

package repositories

import (
	"github.com/hrsuite/recruit-go/db"
	"github.com/hrsuite/recruit-go/models"
)

type DBEventRepo struct{}

func (r *DBEventRepo) Create(event *models.OutboundEvent) error {
	return db.DB.Create(event).Error
}

func (r *DBEventRepo) Recent(limit int) ([]models.OutboundEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	var events []models.OutboundEvent
	err := db.DB.Order("created_at desc").Limit(limit).Find(&events).Error
	return events, err
}

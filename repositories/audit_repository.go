package repositories

import (
	"github.com/hrsuite/recruit-go/db"
	"github.com/hrsuite/recruit-go/models"
)

type DBAuditRepo struct{}

func (r *DBAuditRepo) CreateAuditLog(entry *models.AuditLog) error {
	return db.DB.Create(entry).Error
}

func (r *DBAuditRepo) ListByResource(resourceType, resourceID string) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := db.DB.Where("resource_type = ? AND resource_id = ?", resourceType, resourceID).
		Order("created_at desc").
		Find(&logs).Error
	return logs, err
}

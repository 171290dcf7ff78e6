package models

import "gorm.io/gorm"

// AuditLog records before/after snapshots of every state transition the
// engine applies, keyed by actor and resource.
type AuditLog struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"index"`
	Action       string `json:"action" gorm:"size:64;index"`
	ResourceType string `json:"resource_type" gorm:"size:64"`
	ResourceID   string `json:"resource_id" gorm:"size:64;index"`
	OldData      []byte `json:"old_data" gorm:"type:jsonb"`
	NewData      []byte `json:"new_data" gorm:"type:jsonb"`
	IPAddress    string `json:"ip_address" gorm:"size:64"`
	UserAgent    string `json:"user_agent" gorm:"size:256"`
	Description  string `json:"description" gorm:"type:text"`
}

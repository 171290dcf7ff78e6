package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BenefitsEnrollment is created lazily when an application first reaches the
// BenefitsEnroll stage. Government-ID fields are pre-populated from approved
// document submissions and treated as read-only by clients.
type BenefitsEnrollment struct {
	gorm.Model
	ApplicationID   uint             `json:"application_id" gorm:"not null;uniqueIndex"`
	SSS             string           `json:"sss" gorm:"size:32"`
	PhilHealth      string           `json:"philhealth" gorm:"size:32"`
	PagIbig         string           `json:"pagibig" gorm:"size:32"`
	TIN             string           `json:"tin" gorm:"size:32"`
	EnrollmentDate  *time.Time       `json:"enrollment_date"`
	MembershipProof string           `json:"membership_proof" gorm:"size:256"`
	Status          EnrollmentStatus `json:"enrollment_status" gorm:"type:varchar(16);default:'pending'"`
}

// ProfileCreationEntry queues a completed enrollment for the employee-records
// system. The engine emits an event when it is queued; consuming the entry is
// someone else's job.
type ProfileCreationEntry struct {
	gorm.Model
	ApplicationID        uint           `json:"application_id" gorm:"not null;uniqueIndex"`
	Snapshot             datatypes.JSON `json:"snapshot"`
	ProfilePhotoObject   string         `json:"profile_photo_object" gorm:"size:256"`
	ProfileDataUpdatedAt *time.Time     `json:"profile_data_updated_at"`
}

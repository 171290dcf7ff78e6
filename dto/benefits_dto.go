package dto

import "time"

// SaveBenefitsDTO has a save mode that persists partial data and a submit
// mode that validates and completes the enrollment.
type SaveBenefitsDTO struct {
	Mode            string     `json:"mode" binding:"required"`
	EnrollmentDate  *time.Time `json:"enrollment_date"`
	MembershipProof string     `json:"membership_proof"`
}

type SaveProfileEntryDTO struct {
	Snapshot           map[string]any `json:"snapshot"`
	ProfilePhotoObject string         `json:"profile_photo_object"`
}

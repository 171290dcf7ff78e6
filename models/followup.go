package models

import (
	"time"

	"gorm.io/gorm"
)

type FollowUpStatus string

const (
	FollowUpPending  FollowUpStatus = "pending"
	FollowUpAccepted FollowUpStatus = "accepted"
	FollowUpRejected FollowUpStatus = "rejected"
	FollowUpExpired  FollowUpStatus = "expired"
)

// FollowUpRequest is an applicant-raised negotiation tied to one document
// requirement's submission. At most one pending request may exist per
// requirement.
type FollowUpRequest struct {
	gorm.Model
	RequirementID     uint           `json:"requirement_id" gorm:"not null;index"`
	ApplicationID     uint           `json:"application_id" gorm:"not null;index"`
	Message           string         `json:"message" gorm:"type:text;not null"`
	AttachmentObject  string         `json:"attachment_object" gorm:"size:256"`
	Status            FollowUpStatus `json:"status" gorm:"type:varchar(16);default:'pending'"`
	ExtensionDays     int            `json:"extension_days"`
	ExtensionDeadline *time.Time     `json:"extension_deadline"`
	HRResponse        string         `json:"hr_response" gorm:"type:text"`
	RespondedAt       *time.Time     `json:"responded_at"`
	ResponderID       *uint          `json:"responder_id"`
}

// EffectiveStatus derives expiry at read time; expiry is never written back.
// A pending request lapses once the staff response window passes, an accepted
// one once its extension deadline passes.
func (f *FollowUpRequest) EffectiveStatus(now time.Time, responseWindow time.Duration) FollowUpStatus {
	switch f.Status {
	case FollowUpPending:
		if now.After(f.CreatedAt.Add(responseWindow)) {
			return FollowUpExpired
		}
	case FollowUpAccepted:
		if f.ExtensionDeadline != nil && now.After(*f.ExtensionDeadline) {
			return FollowUpExpired
		}
	}
	return f.Status
}

func (f *FollowUpRequest) IsResolved() bool {
	return f.Status != FollowUpPending
}

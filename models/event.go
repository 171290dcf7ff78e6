package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EventType string

const (
	EventStageAdvanced        EventType = "StageAdvanced"
	EventDocumentReviewed     EventType = "DocumentReviewed"
	EventFollowUpResolved     EventType = "FollowUpResolved"
	EventProfileCreationQueue EventType = "ProfileCreationQueued"
)

// OutboundEvent is the engine's notification boundary. Each row carries
// enough payload for a notification service to message the applicant; the
// engine never formats or delivers messages itself. Delivery failure never
// rolls back the state change that produced the event.
type OutboundEvent struct {
	gorm.Model
	EventID       string         `json:"event_id" gorm:"size:64;uniqueIndex"`
	Type          EventType      `json:"type" gorm:"type:varchar(32);index"`
	ApplicationID uint           `json:"application_id" gorm:"index"`
	Payload       datatypes.JSON `json:"payload"`
}

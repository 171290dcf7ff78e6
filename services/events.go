package services

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"github.com/hrsuite/recruit-go/models"
	"github.com/hrsuite/recruit-go/repositories"
)

// EventSink receives persisted outbound events for live fan-out (the
// dashboard websocket hub). Delivery is best-effort.
type EventSink interface {
	Publish(event models.OutboundEvent)
}

// emitEvent persists an outbound event and hands it to the sink. It is
// always called after the state change has committed and never propagates an
// error back to the operation that produced the event.
func emitEvent(repo repositories.EventRepo, sink EventSink, eventType models.EventType, applicationID uint, payload map[string]any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("event payload marshal error: %v", err)
		raw = []byte("{}")
	}

	event := models.OutboundEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		ApplicationID: applicationID,
		Payload:       raw,
	}
	if err := repo.Create(&event); err != nil {
		log.Printf("event persist error (%s app %d): %v", eventType, applicationID, err)
	}
	if sink != nil {
		sink.Publish(event)
	}
}

type EventService struct {
	repo repositories.EventRepo
}

func NewEventService(repo repositories.EventRepo) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) Recent(limit int) ([]models.OutboundEvent, error) {
	return s.repo.Recent(limit)
}

package services

import (
	"strconv"

	"github.com/hrsuite/recruit-go/repositories"
	"github.com/hrsuite/recruit-go/utils"
)

type Services struct {
	User        *UserService
	Application *ApplicationService
	Document    *DocumentService
	Completion  *CompletionService
	FollowUp    *FollowUpService
	Event       *EventService
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func New(repos *repositories.Repos, sink EventSink) *Services {
	locks := utils.NewAppLocks()
	return &Services{
		User:        NewUserService(repos),
		Application: NewApplicationService(repos, locks, sink),
		Document:    NewDocumentService(repos, locks, sink),
		Completion:  NewCompletionService(repos, locks, sink),
		FollowUp:    NewFollowUpService(repos, locks, sink),
		Event:       NewEventService(repos.Event),
	}
}

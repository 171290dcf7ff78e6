package models

import (
	"time"

	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	StatusPending      ApplicationStatus = "Pending"
	StatusShortListed  ApplicationStatus = "ShortListed"
	StatusInterview    ApplicationStatus = "Interview"
	StatusOffered      ApplicationStatus = "Offered"
	StatusOfferAccept  ApplicationStatus = "OfferAccepted"
	StatusDocumentSub  ApplicationStatus = "DocumentSubmission"
	StatusBenefits     ApplicationStatus = "BenefitsEnroll"
	StatusProfile      ApplicationStatus = "ProfileCreation"
	StatusOrientation  ApplicationStatus = "OrientationSchedule"
	StatusStartDate    ApplicationStatus = "StartDate"
	StatusHired        ApplicationStatus = "Hired"
	StatusRejected     ApplicationStatus = "Rejected"
)

type DocumentsStageStatus string

const (
	DocumentsStageNone      DocumentsStageStatus = "none"
	DocumentsStageCompleted DocumentsStageStatus = "completed"
)

type EnrollmentStatus string

const (
	EnrollmentPending    EnrollmentStatus = "pending"
	EnrollmentInProgress EnrollmentStatus = "in_progress"
	EnrollmentCompleted  EnrollmentStatus = "completed"
)

// statusSuccessors is the fixed adjacency table for application status
// transitions. Anything not listed here is an invalid transition.
var statusSuccessors = map[ApplicationStatus][]ApplicationStatus{
	StatusPending:     {StatusShortListed, StatusRejected},
	StatusShortListed: {StatusInterview},
	StatusInterview:   {StatusOffered, StatusRejected},
	StatusOffered:     {StatusOfferAccept},
	StatusOfferAccept: {StatusDocumentSub},
	StatusDocumentSub: {StatusBenefits},
	StatusBenefits:    {StatusProfile},
	StatusProfile:     {StatusOrientation},
	StatusOrientation: {StatusStartDate},
	StatusStartDate:   {StatusHired},
	StatusHired:       {},
	StatusRejected:    {},
}

func CanTransition(from, to ApplicationStatus) bool {
	for _, next := range statusSuccessors[from] {
		if next == to {
			return true
		}
	}
	return false
}

func IsKnownStatus(s ApplicationStatus) bool {
	_, ok := statusSuccessors[s]
	return ok
}

func IsTerminalStatus(s ApplicationStatus) bool {
	return s == StatusHired || s == StatusRejected
}

// IsOnboarding reports whether s is one of the Onboarding sub-stages.
func IsOnboarding(s ApplicationStatus) bool {
	switch s {
	case StatusDocumentSub, StatusBenefits, StatusProfile, StatusOrientation, StatusStartDate:
		return true
	}
	return false
}

// ReachedBenefits reports whether s lies at or beyond the BenefitsEnroll
// stage. Completing the document stage is the only way in, so
// DocumentSubmission itself is excluded.
func ReachedBenefits(s ApplicationStatus) bool {
	switch s {
	case StatusBenefits, StatusProfile, StatusOrientation, StatusStartDate, StatusHired:
		return true
	}
	return false
}

type Application struct {
	gorm.Model
	ApplicantID uint              `json:"applicant_id" gorm:"not null;index"`
	PostingRef  string            `json:"posting_ref" gorm:"size:128"`
	Status      ApplicationStatus `json:"status" gorm:"type:varchar(32);default:'Pending'"`

	DocumentsStageStatus  DocumentsStageStatus `json:"documents_stage_status" gorm:"type:varchar(16);default:'none'"`
	DocumentsCompletedAt  *time.Time           `json:"documents_completed_at"`
	BenefitsStatus        EnrollmentStatus     `json:"benefits_enrollment_status" gorm:"type:varchar(16);default:'pending'"`
	IsInBenefitsEnroll    bool                 `json:"is_in_benefits_enrollment"`
	OfferSentAt           *time.Time           `json:"offer_sent_at"`
	OfferPosition         string               `json:"offer_position" gorm:"size:128"`
	OfferSalary           string               `json:"offer_salary" gorm:"size:64"`
	LastTransitionAt      *time.Time           `json:"last_transition_at"`

	Applicant User       `json:"applicant" gorm:"foreignKey:ApplicantID"`
	Interview *Interview `json:"interview,omitempty" gorm:"foreignKey:ApplicationID"`
}

// Interview is owned by its Application and queried directly, replacing the
// old email-matching lookup of scheduled interviews.
type Interview struct {
	gorm.Model
	ApplicationID uint      `json:"application_id" gorm:"not null;uniqueIndex"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Location      string    `json:"location" gorm:"size:256"`
	Interviewer   string    `json:"interviewer" gorm:"size:128"`
	Mode          string    `json:"mode" gorm:"size:32"`
	Rescheduled   int       `json:"rescheduled"`
}

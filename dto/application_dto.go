package dto

import "time"

type CreateApplicationDTO struct {
	PostingRef string `json:"posting_ref" binding:"required"`
}

type AdvanceStatusDTO struct {
	Target string `json:"target" binding:"required"`
}

type ScheduleInterviewDTO struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Location    string    `json:"location"`
	Interviewer string    `json:"interviewer"`
	Mode        string    `json:"mode"`
}

type ScheduleBatchDTO struct {
	ApplicationIDs []uint               `json:"application_ids" binding:"required"`
	Details        ScheduleInterviewDTO `json:"details" binding:"required"`
}

type SendOfferDTO struct {
	Position string `json:"position" binding:"required"`
	Salary   string `json:"salary"`
}

type ApplicationFilter struct {
	Status      string `form:"status"`
	ApplicantID uint   `form:"applicant_id"`
	PostingRef  string `form:"posting_ref"`
}

// BatchItemResult reports one application's outcome of a batch operation.
type BatchItemResult struct {
	ApplicationID uint   `json:"application_id"`
	OK            bool   `json:"ok"`
	Error         string `json:"error,omitempty"`
}

package models

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type SubmissionStatus string

const (
	SubmissionPending       SubmissionStatus = "pending"
	SubmissionPendingReview SubmissionStatus = "pending_review"
	SubmissionUploaded      SubmissionStatus = "uploaded"
	SubmissionUnderReview   SubmissionStatus = "under_review"
	// SubmissionReceived is a deprecated alias of SubmissionApproved kept for
	// data written by older clients. Reviews never produce it.
	SubmissionReceived      SubmissionStatus = "received"
	SubmissionApproved      SubmissionStatus = "approved"
	SubmissionRejected      SubmissionStatus = "rejected"
	SubmissionResubmit      SubmissionStatus = "resubmission_required"
)

// IsApproved treats the legacy "received" status as approved.
func (s SubmissionStatus) IsApproved() bool {
	return s == SubmissionApproved || s == SubmissionReceived
}

// Reviewable reports whether an approve action may be applied.
func (s SubmissionStatus) Reviewable() bool {
	switch s {
	case SubmissionPending, SubmissionPendingReview, SubmissionUploaded, SubmissionUnderReview:
		return true
	}
	return false
}

// DocumentRequirement is owned by one Application. Built-in requirements carry
// a stable DocumentKey from the catalog; ad-hoc staff-created ones have an
// empty key.
type DocumentRequirement struct {
	gorm.Model
	ApplicationID uint           `json:"application_id" gorm:"not null;index"`
	DocumentKey   string         `json:"document_key" gorm:"size:64;index"`
	DocumentName  string         `json:"document_name" gorm:"size:128;not null"`
	Description   string         `json:"description" gorm:"type:text"`
	IsRequired    bool           `json:"is_required" gorm:"default:true"`
	FileFormats   pq.StringArray `json:"file_formats" gorm:"type:text[]"`
	MaxFileSizeMB int            `json:"max_file_size_mb" gorm:"default:10"`
	DisplayOrder  int            `json:"display_order"`

	Submission *DocumentSubmission `json:"submission,omitempty" gorm:"foreignKey:RequirementID"`
}

func (r *DocumentRequirement) IsAdHoc() bool {
	return r.DocumentKey == ""
}

// AllowsFormat checks a declared filename against the allow-list. An empty
// allow-list accepts anything.
func (r *DocumentRequirement) AllowsFormat(filename string) bool {
	if len(r.FileFormats) == 0 {
		return true
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	for _, f := range r.FileFormats {
		if strings.ToLower(strings.TrimPrefix(f, ".")) == ext {
			return true
		}
	}
	return false
}

// DocumentSubmission is the single current submission for a requirement.
// Re-upload replaces it in place.
type DocumentSubmission struct {
	gorm.Model
	RequirementID   uint             `json:"requirement_id" gorm:"not null;uniqueIndex"`
	ApplicationID   uint             `json:"application_id" gorm:"not null;index"`
	ObjectName      string           `json:"object_name" gorm:"size:256;not null"`
	FileName        string           `json:"file_name" gorm:"size:256"`
	FileSizeBytes   int64            `json:"file_size_bytes"`
	// DeclaredIdentifier is declared metadata for government-ID documents
	// (e.g. the SSS number on the uploaded record). The engine never reads
	// file bytes, so identifiers travel as submission metadata.
	DeclaredIdentifier string `json:"declared_identifier" gorm:"size:64"`
	SubmittedAt     time.Time        `json:"submitted_at"`
	Status          SubmissionStatus `json:"status" gorm:"type:varchar(32);default:'pending_review'"`
	RejectionReason string           `json:"rejection_reason" gorm:"type:text"`
	ReviewedAt      *time.Time       `json:"reviewed_at"`
	ReviewerID      *uint            `json:"reviewer_id"`
}

type AggregateDocumentStatus string

const (
	AggregateApproved      AggregateDocumentStatus = "Approved"
	AggregateRejected      AggregateDocumentStatus = "Rejected"
	AggregatePendingReview AggregateDocumentStatus = "PendingReview"
	AggregateIncomplete    AggregateDocumentStatus = "Incomplete"
)

// DeriveAggregateStatus computes the dashboard summary for a requirement set
// and its current submissions. It is pure: callers must never cache the
// result as state. The only stored marker is the application's
// documents_stage_status once the stage completes.
func DeriveAggregateStatus(requirements []DocumentRequirement, submissions []DocumentSubmission) AggregateDocumentStatus {
	// An empty requirement set never reads as approved; the stage cannot
	// close on vacuous truth.
	if len(requirements) == 0 {
		return AggregateIncomplete
	}

	byRequirement := make(map[uint]*DocumentSubmission, len(submissions))
	for i := range submissions {
		byRequirement[submissions[i].RequirementID] = &submissions[i]
	}

	allRequiredApproved := true
	anyRejected := false
	anySubmission := len(submissions) > 0

	for i := range requirements {
		req := &requirements[i]
		sub := byRequirement[req.ID]
		if req.IsRequired && (sub == nil || !sub.Status.IsApproved()) {
			allRequiredApproved = false
		}
	}
	for i := range submissions {
		if submissions[i].Status == SubmissionRejected {
			anyRejected = true
		}
	}

	switch {
	case allRequiredApproved:
		return AggregateApproved
	case anyRejected:
		return AggregateRejected
	case anySubmission:
		return AggregatePendingReview
	default:
		return AggregateIncomplete
	}
}

package dto

type CreateFollowUpDTO struct {
	RequirementID    uint   `json:"requirement_id" binding:"required"`
	Message          string `json:"message" binding:"required"`
	AttachmentObject string `json:"attachment_object"`
}

type RespondFollowUpDTO struct {
	Decision      string `json:"decision" binding:"required"`
	HRResponse    string `json:"hr_response"`
	ExtensionDays int    `json:"extension_days"`
}

package dto

type CreateRequirementDTO struct {
	ApplicationID uint     `json:"application_id" binding:"required"`
	DocumentName  string   `json:"document_name" binding:"required"`
	Description   string   `json:"description"`
	IsRequired    *bool    `json:"is_required"`
	FileFormats   []string `json:"file_formats"`
	MaxFileSizeMB int      `json:"max_file_size_mb"`
}

type DeleteRequirementDTO struct {
	Override bool `form:"override"`
}

// SubmitDocumentDTO carries declared metadata only; the engine never inspects
// file bytes.
type SubmitDocumentDTO struct {
	FileName      string `json:"file_name" binding:"required"`
	FileSizeBytes int64  `json:"file_size_bytes" binding:"required"`
	ContentType   string `json:"content_type"`
	// DeclaredIdentifier carries the ID number for government-ID documents.
	DeclaredIdentifier string `json:"declared_identifier"`
}

type ReviewDocumentDTO struct {
	Decision string `json:"decision" binding:"required"`
	Reason   string `json:"reason"`
}

package models

import "time"

// ResumeFormat represents the file format of a generated resume.
type ResumeFormat string

const (
	ResumeFormatPDF  ResumeFormat = "pdf"
	ResumeFormatDocx ResumeFormat = "docx"
)

// ResumeDownload is a write-once log row recorded per download event.
type ResumeDownload struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	DownloadURL string       `json:"download_url"`
	FileFormat  ResumeFormat `json:"file_format"`
	FileSize    int64        `json:"file_size"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

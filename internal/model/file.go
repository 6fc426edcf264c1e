package model

import "time"

// File types recognised by the file lookups.
const (
	FileTypePDF      = "pdf"
	FileTypeImage    = "image"
	FileTypeVideo    = "video"
	FileTypeDocument = "document"
)

// File is uploaded file metadata; contents live elsewhere.
type File struct {
	ID          string
	UserID      string
	Name        string
	FileType    string
	MimeType    string
	Size        int64
	UploadedAt  time.Time
	ProjectID   string
	ProjectName string
	TaskID      string
	TaskTitle   string
	EventID     string
	EventTitle  string
}

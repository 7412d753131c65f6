package requests

import "io"

type UploadAttachment struct {
	RecordID string
	FileName string
	FileType string
	FileSize int64
	Reader   io.Reader
}

package responses

type AttachmentUpload struct {
	FileName string `json:"fileName"`
	URL      string `json:"url"`
	FileSize int64  `json:"fileSize"`
}

type AttachmentDownload struct {
	FileName string `json:"fileName"`
	URL      string `json:"url"`
}

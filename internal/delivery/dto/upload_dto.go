package dto

type UploadResponse struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

type DeleteUploadResponse struct {
	Status string `json:"status"`
}

package dto

import "io"

// VideoRecord is one entry of the backend's GET /v1/videos response.
type VideoRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// UploadURLQuery is the query string of GET /v1/uploads/presigned-url,
// encoded with go-querystring. The capability the backend returns is tied to
// exactly these values; reusing it for a different file is invalid.
type UploadURLQuery struct {
	ContentLength int64  `url:"contentLength"`
	FileType      string `url:"fileType"`
}

// UploadURLResponse carries the write capability. An empty URL counts as a
// declined capability.
type UploadURLResponse struct {
	URL string `json:"url"`
}

// DownloadURLResponse carries the read capability for a packaged artifact.
type DownloadURLResponse struct {
	PresignedURL string `json:"presignedUrl"`
}

// LoginResponse is the backend's answer to POST /v1/users/login.
type LoginResponse struct {
	Token string `json:"token"`
}

// UploadFile is the selected file handle for one upload session: the binary
// payload plus the media type and byte length declared to the backend when
// the write capability is requested.
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

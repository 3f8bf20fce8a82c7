package dto

import "video-uploader/domain/model"

// Res is the generic envelope the gateway returns for failures.
type Res struct {
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
}

// VideoRow is one dashboard row: the asset plus everything the UI needs to
// render it without knowing the lifecycle enumeration.
type VideoRow struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	Status       model.VideoStatus        `json:"status"`
	Presentation model.StatusPresentation `json:"presentation"`
	// Downloadable gates the download control; true only for FINISHED.
	Downloadable bool `json:"downloadable"`
}

// VideoListResponse is the gateway's asset-list payload.
type VideoListResponse struct {
	Videos []VideoRow `json:"videos"`
}

// UploadResponse acknowledges a finished upload session. The UI is expected
// to refresh the list; the new asset appears with UPLOAD_PENDING once the
// server has registered it.
type UploadResponse struct {
	Name string `json:"name"`
}

package model

import "fmt"

// VideoStatus is the server-authoritative lifecycle stage of a video asset.
// The client only observes it; transitions happen on the backend
// (UPLOAD_PENDING -> UPLOADED -> CONVERTING_TO_FPS -> FINISHED, FAILED from
// any non-terminal stage).
type VideoStatus string

const (
	StatusUploadPending VideoStatus = "UPLOAD_PENDING"
	StatusUploaded      VideoStatus = "UPLOADED"
	StatusConverting    VideoStatus = "CONVERTING_TO_FPS"
	StatusFinished      VideoStatus = "FINISHED"
	StatusFailed        VideoStatus = "FAILED"
)

// AllVideoStatuses is the closed enumeration in pipeline order. Tests assert
// the presentation mapping covers every entry.
var AllVideoStatuses = []VideoStatus{
	StatusUploadPending,
	StatusUploaded,
	StatusConverting,
	StatusFinished,
	StatusFailed,
}

// Valid reports whether s is one of the known lifecycle stages.
func (s VideoStatus) Valid() bool {
	switch s {
	case StatusUploadPending, StatusUploaded, StatusConverting, StatusFinished, StatusFailed:
		return true
	}
	return false
}

// Terminal reports whether the backend will never move the asset again.
func (s VideoStatus) Terminal() bool {
	return s == StatusFinished || s == StatusFailed
}

// Downloadable reports whether the packaged artifact can be fetched. Only the
// terminal success stage qualifies.
func (s VideoStatus) Downloadable() bool {
	return s == StatusFinished
}

// VideoAsset represents one video row on the dashboard. The ID is assigned by
// the server and immutable; Name is the file name given at upload time.
type VideoAsset struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Status VideoStatus `json:"status"`
}

// StatusPresentation is the display contract for a lifecycle stage. It is
// purely derived data; no side effects, no network.
type StatusPresentation struct {
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Severity string `json:"severity"`
	// Animated marks stages that should render a spinning affordance.
	Animated bool `json:"animated"`
}

// Presentation maps a lifecycle stage to its display contract. The mapping is
// exhaustive over the closed enumeration; an unknown stage panics so a grown
// enum cannot ship with a silently unmapped state.
func (s VideoStatus) Presentation() StatusPresentation {
	switch s {
	case StatusUploadPending:
		return StatusPresentation{Label: "Upload pending", Icon: "upload-cloud", Color: "#fcab04", Severity: "warning"}
	case StatusUploaded:
		return StatusPresentation{Label: "Uploaded", Icon: "check-circle", Color: "#f46c14", Severity: "info"}
	case StatusConverting:
		return StatusPresentation{Label: "Converting", Icon: "refresh-cw", Color: "#e42c64", Severity: "info", Animated: true}
	case StatusFinished:
		return StatusPresentation{Label: "Finished", Icon: "film", Color: "#de348a", Severity: "success"}
	case StatusFailed:
		return StatusPresentation{Label: "Failed", Icon: "alert-triangle", Color: "#dc2626", Severity: "error"}
	}
	panic(fmt.Sprintf("unmapped video status: %q", string(s)))
}

package model

import "errors"

// Error kinds surfaced by the core operations. Every operation terminates
// with success or exactly one of these; callers match with errors.Is and map
// the kind to a user-facing notification.
var (
	// ErrInvalidInput is client-detected (missing selection, wrong media
	// type) and never reaches the network.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthenticated means no credential was present where one is
	// required. Resolved by sending the user back to the login entry point.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrCapability means the backend declined or omitted a presigned URL.
	ErrCapability = errors.New("capability request failed")

	// ErrTransfer covers network or storage failures during an actual byte
	// transfer, upload or download.
	ErrTransfer = errors.New("transfer failed")

	// ErrUploadInFlight rejects a second submission while an upload session
	// is still running.
	ErrUploadInFlight = errors.New("upload already in flight")
)

package repository

import (
	"context"

	"video-uploader/domain/dto"
	"video-uploader/domain/model"
)

// IVideoBackend defines the remote video service contract the client
// consumes. Authenticated calls take the bearer token explicitly; the caller
// is responsible for resolving it from the credential store first.
type IVideoBackend interface {
	// ListVideos returns the user's assets in server order.
	ListVideos(ctx context.Context, token string) ([]model.VideoAsset, error)
	// CreateUploadURL requests a single-use write capability tied to the
	// declared byte length and media subtype.
	CreateUploadURL(ctx context.Context, token string, q dto.UploadURLQuery) (string, error)
	// CreateDownloadURL requests a read capability for the packaged artifact
	// of one video.
	CreateDownloadURL(ctx context.Context, token string, videoID string) (string, error)

	// Login exchanges credentials for a bearer token at the identity endpoint.
	Login(ctx context.Context, req model.ReqLogin) (string, error)
	// Signup creates an account; no token is issued.
	Signup(ctx context.Context, req model.ReqRegister) error
}

package usecase

import (
	"context"
	"fmt"

	"video-uploader/domain/model"
	"video-uploader/domain/repository"
	"video-uploader/infrastructure/logger"
)

// Artifact is the downloaded payload handed to the save step. The caller
// must not hold onto Payload after the save has been triggered.
type Artifact struct {
	FileName string
	Payload  []byte
}

// IDownloadUsecase exchanges a video ID for its packaged artifact. The
// caller only invokes it for assets in the terminal success state; this
// component trusts that gating and does not re-check against the server.
type IDownloadUsecase interface {
	Download(ctx context.Context, assetID string) (*Artifact, error)
}

type DownloadUsecase struct {
	backend     repository.IVideoBackend
	objectStore repository.IObjectStore
	credentials repository.ICredential
}

func NewDownloadUsecase(
	backend repository.IVideoBackend,
	objectStore repository.IObjectStore,
	credentials repository.ICredential,
) IDownloadUsecase {
	return &DownloadUsecase{backend: backend, objectStore: objectStore, credentials: credentials}
}

// Download authenticates, requests a read capability, fetches the artifact
// bytes and names the result {assetID}.zip. No automatic retry; one failure
// notification per attempt.
func (u *DownloadUsecase) Download(ctx context.Context, assetID string) (*Artifact, error) {
	if assetID == "" {
		return nil, fmt.Errorf("%w: asset ID is required", model.ErrInvalidInput)
	}

	// Proceed only when a token is present.
	token, ok := u.credentials.Get()
	if !ok {
		return nil, fmt.Errorf("%w: download requires login", model.ErrUnauthenticated)
	}

	url, err := u.backend.CreateDownloadURL(ctx, token, assetID)
	if err != nil {
		return nil, err
	}

	payload, err := u.objectStore.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	logger.GetLogger().WithField("assetId", assetID).WithField("bytes", len(payload)).Info("Artifact fetched")
	return &Artifact{
		FileName: assetID + ".zip",
		Payload:  payload,
	}, nil
}

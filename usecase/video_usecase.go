package usecase

import (
	"context"
	"fmt"

	"video-uploader/domain/model"
	"video-uploader/domain/repository"
)

// IVideoUsecase exposes the asset list. Every call is a fresh read; the
// dashboard replaces its in-memory collection wholesale with the result.
type IVideoUsecase interface {
	ListVideos(ctx context.Context) ([]model.VideoAsset, error)
}

type VideoUsecase struct {
	backend     repository.IVideoBackend
	credentials repository.ICredential
}

func NewVideoUsecase(backend repository.IVideoBackend, credentials repository.ICredential) IVideoUsecase {
	return &VideoUsecase{backend: backend, credentials: credentials}
}

// ListVideos returns the user's assets in server order. With no credential
// present it fails before any network call; the caller redirects to login.
func (u *VideoUsecase) ListVideos(ctx context.Context) ([]model.VideoAsset, error) {
	token, ok := u.credentials.Get()
	if !ok {
		return nil, fmt.Errorf("%w: listing videos requires login", model.ErrUnauthenticated)
	}
	return u.backend.ListVideos(ctx, token)
}

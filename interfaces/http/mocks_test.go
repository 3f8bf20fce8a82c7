package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"video-uploader/domain/dto"
	"video-uploader/domain/model"
	"video-uploader/usecase"
)

// Mock implementations of the usecase interfaces for handler tests.

type MockVideoUsecase struct {
	mock.Mock
}

func (m *MockVideoUsecase) ListVideos(ctx context.Context) ([]model.VideoAsset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VideoAsset), args.Error(1)
}

type MockDownloadUsecase struct {
	mock.Mock
}

func (m *MockDownloadUsecase) Download(ctx context.Context, assetID string) (*usecase.Artifact, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.Artifact), args.Error(1)
}

type MockUploadUsecase struct {
	mock.Mock
}

func (m *MockUploadUsecase) Upload(ctx context.Context, file dto.UploadFile) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

func (m *MockUploadUsecase) InFlight() bool {
	args := m.Called()
	return args.Bool(0)
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, req model.ReqLogin) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAuthUsecase) Signup(ctx context.Context, req model.ReqRegister) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAuthUsecase) Logout() {
	m.Called()
}

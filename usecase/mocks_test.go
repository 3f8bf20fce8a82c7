package usecase_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"video-uploader/domain/dto"
	"video-uploader/domain/model"
)

// Mock implementations of the repository interfaces, shared by the usecase
// tests.

type MockVideoBackend struct {
	mock.Mock
}

func (m *MockVideoBackend) ListVideos(ctx context.Context, token string) ([]model.VideoAsset, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VideoAsset), args.Error(1)
}

func (m *MockVideoBackend) CreateUploadURL(ctx context.Context, token string, q dto.UploadURLQuery) (string, error) {
	args := m.Called(ctx, token, q)
	return args.String(0), args.Error(1)
}

func (m *MockVideoBackend) CreateDownloadURL(ctx context.Context, token string, videoID string) (string, error) {
	args := m.Called(ctx, token, videoID)
	return args.String(0), args.Error(1)
}

func (m *MockVideoBackend) Login(ctx context.Context, req model.ReqLogin) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockVideoBackend) Signup(ctx context.Context, req model.ReqRegister) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, url string, contentType string, body io.Reader, size int64) error {
	args := m.Called(ctx, url, contentType, body, size)
	return args.Error(0)
}

func (m *MockObjectStore) Fetch(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockCredential struct {
	mock.Mock
}

func (m *MockCredential) Get() (string, bool) {
	args := m.Called()
	return args.String(0), args.Bool(1)
}

func (m *MockCredential) Set(token string) {
	m.Called(token)
}

func (m *MockCredential) Clear() {
	m.Called()
}

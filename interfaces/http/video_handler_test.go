package http_test

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"video-uploader/domain/dto"
	"video-uploader/domain/model"
	handlers "video-uploader/interfaces/http"
	"video-uploader/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func videoRouter(videoUsecase *MockVideoUsecase, downloadUsecase *MockDownloadUsecase) *gin.Engine {
	handler := handlers.NewVideoHandler(videoUsecase, downloadUsecase)
	router := gin.New()
	router.GET("/api/videos", handler.ListVideos)
	router.GET("/api/videos/:videoId/download", handler.Download)
	return router
}

func TestListVideosReturnsRowsWithPresentation(t *testing.T) {
	videoUsecase := new(MockVideoUsecase)
	videoUsecase.On("ListVideos", mock.Anything).Return([]model.VideoAsset{
		{ID: "v1", Name: "holiday.mp4", Status: model.StatusFinished},
		{ID: "v2", Name: "talk.mp4", Status: model.StatusConverting},
	}, nil)
	router := videoRouter(videoUsecase, new(MockDownloadUsecase))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/videos", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusOK, rec.Code)
	var res dto.VideoListResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Len(t, res.Videos, 2)
	assert.True(t, res.Videos[0].Downloadable)
	assert.Equal(t, "Finished", res.Videos[0].Presentation.Label)
	assert.False(t, res.Videos[1].Downloadable)
	assert.True(t, res.Videos[1].Presentation.Animated)
}

func TestListVideosUnauthenticatedRedirectsToLogin(t *testing.T) {
	videoUsecase := new(MockVideoUsecase)
	videoUsecase.On("ListVideos", mock.Anything).Return(nil, model.ErrUnauthenticated)
	router := videoRouter(videoUsecase, new(MockDownloadUsecase))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/videos", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/login", body["redirect"])
}

func TestDownloadStreamsFinishedVideo(t *testing.T) {
	videoUsecase := new(MockVideoUsecase)
	videoUsecase.On("ListVideos", mock.Anything).Return([]model.VideoAsset{
		{ID: "v42", Name: "holiday.mp4", Status: model.StatusFinished},
	}, nil)
	downloadUsecase := new(MockDownloadUsecase)
	downloadUsecase.On("Download", mock.Anything, "v42").
		Return(&usecase.Artifact{FileName: "v42.zip", Payload: []byte("zip-bytes")}, nil)
	router := videoRouter(videoUsecase, downloadUsecase)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/videos/v42/download", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="v42.zip"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "zip-bytes", rec.Body.String())
}

func TestDownloadRefusedWhileNotFinished(t *testing.T) {
	for _, status := range []model.VideoStatus{
		model.StatusUploadPending,
		model.StatusUploaded,
		model.StatusConverting,
		model.StatusFailed,
	} {
		videoUsecase := new(MockVideoUsecase)
		videoUsecase.On("ListVideos", mock.Anything).Return([]model.VideoAsset{
			{ID: "v42", Name: "holiday.mp4", Status: status},
		}, nil)
		downloadUsecase := new(MockDownloadUsecase)
		router := videoRouter(videoUsecase, downloadUsecase)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(nethttp.MethodGet, "/api/videos/v42/download", nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, nethttp.StatusConflict, rec.Code, "status %s", status)
		downloadUsecase.AssertNotCalled(t, "Download", mock.Anything, mock.Anything)
	}
}

func TestDownloadUnknownVideoIsNotFound(t *testing.T) {
	videoUsecase := new(MockVideoUsecase)
	videoUsecase.On("ListVideos", mock.Anything).Return([]model.VideoAsset{}, nil)
	downloadUsecase := new(MockDownloadUsecase)
	router := videoRouter(videoUsecase, downloadUsecase)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/videos/ghost/download", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	downloadUsecase.AssertNotCalled(t, "Download", mock.Anything, mock.Anything)
}

func TestDownloadCapabilityFailureIsBadGateway(t *testing.T) {
	videoUsecase := new(MockVideoUsecase)
	videoUsecase.On("ListVideos", mock.Anything).Return([]model.VideoAsset{
		{ID: "v42", Name: "holiday.mp4", Status: model.StatusFinished},
	}, nil)
	downloadUsecase := new(MockDownloadUsecase)
	downloadUsecase.On("Download", mock.Anything, "v42").Return(nil, model.ErrCapability)
	router := videoRouter(videoUsecase, downloadUsecase)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/videos/v42/download", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusBadGateway, rec.Code)
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"video-uploader/domain/dto"
	"video-uploader/domain/model"
	"video-uploader/infrastructure/logger"
	"video-uploader/usecase"
)

type IVideoHandler interface {
	ListVideos(c *gin.Context)
	Download(c *gin.Context)
}

type VideoHandler struct {
	videoUsecase    usecase.IVideoUsecase
	downloadUsecase usecase.IDownloadUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase, downloadUsecase usecase.IDownloadUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase, downloadUsecase: downloadUsecase}
}

// ListVideos returns the dashboard rows. On failure the UI keeps whatever
// list it already shows and raises one notification; nothing is partially
// overwritten here.
func (h *VideoHandler) ListVideos(c *gin.Context) {
	assets, err := h.videoUsecase.ListVideos(c.Request.Context())
	if err != nil {
		abortWithKind(c, err, "Could not load your videos")
		return
	}

	rows := make([]dto.VideoRow, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, dto.VideoRow{
			ID:           a.ID,
			Name:         a.Name,
			Status:       a.Status,
			Presentation: a.Status.Presentation(),
			Downloadable: a.Status.Downloadable(),
		})
	}
	c.JSON(http.StatusOK, dto.VideoListResponse{Videos: rows})
}

// Download streams the packaged artifact of one finished video. The handler
// owns the state gating: anything but FINISHED is refused before the
// resolver runs.
func (h *VideoHandler) Download(c *gin.Context) {
	videoID := c.Param("videoId")

	assets, err := h.videoUsecase.ListVideos(c.Request.Context())
	if err != nil {
		abortWithKind(c, err, "Could not verify the video's state")
		return
	}
	var asset *model.VideoAsset
	for i := range assets {
		if assets[i].ID == videoID {
			asset = &assets[i]
			break
		}
	}
	if asset == nil {
		c.JSON(http.StatusNotFound, dto.Res{ResponseCode: "404", ResponseMessage: "Video not found"})
		return
	}
	if !asset.Status.Downloadable() {
		c.JSON(http.StatusConflict, dto.Res{ResponseCode: "409", ResponseMessage: "Video is not finished yet"})
		return
	}

	artifact, err := h.downloadUsecase.Download(c.Request.Context(), videoID)
	if err != nil {
		abortWithKind(c, err, "Could not download the video zip")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+artifact.FileName+`"`)
	c.Data(http.StatusOK, "application/zip", artifact.Payload)
	// Drop the payload reference; the bytes belong to the response now.
	artifact.Payload = nil
}

// abortWithKind maps a core error kind to one user-facing notification. An
// Unauthenticated failure additionally points the UI at the login entry.
func abortWithKind(c *gin.Context, err error, message string) {
	logger.GetLogger().WithField("error", err).Error(message)
	switch {
	case errors.Is(err, model.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{
			"responseCode":    "401",
			"responseMessage": "You need to be logged in",
			"redirect":        "/login",
		})
	case errors.Is(err, model.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: message})
	case errors.Is(err, model.ErrUploadInFlight):
		c.JSON(http.StatusConflict, dto.Res{ResponseCode: "409", ResponseMessage: "An upload is already in progress"})
	case errors.Is(err, model.ErrCapability):
		c.JSON(http.StatusBadGateway, dto.Res{ResponseCode: "502", ResponseMessage: message})
	default:
		c.JSON(http.StatusBadGateway, dto.Res{ResponseCode: "502", ResponseMessage: message})
	}
}

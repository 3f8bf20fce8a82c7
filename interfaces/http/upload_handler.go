package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"video-uploader/domain/dto"
	"video-uploader/infrastructure/logger"
	"video-uploader/usecase"
)

type IUploadHandler interface {
	Upload(c *gin.Context)
	Close(c *gin.Context)
}

type UploadHandler struct {
	uploadUsecase usecase.IUploadUsecase
	allowedType   string
}

func NewUploadHandler(uploadUsecase usecase.IUploadUsecase, allowedType string) IUploadHandler {
	return &UploadHandler{uploadUsecase: uploadUsecase, allowedType: allowedType}
}

// Upload accepts one multipart file and runs an upload session. The media
// type check here mirrors the dialog's selection-time rejection; the usecase
// repeats it as the authoritative gate.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("No file in upload request")
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: "Select a video file to upload"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != h.allowedType {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: "Only MP4 videos are supported"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Could not open uploaded file")
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: "Could not read the selected file"})
		return
	}
	defer file.Close()

	name, err := h.uploadUsecase.Upload(c.Request.Context(), dto.UploadFile{
		Name:        fileHeader.Filename,
		ContentType: contentType,
		Size:        fileHeader.Size,
		Content:     file,
	})
	if err != nil {
		abortWithKind(c, err, "Could not upload the video")
		return
	}

	// The UI refreshes the list next; the new asset shows up as
	// UPLOAD_PENDING once the server has registered it.
	c.JSON(http.StatusOK, dto.UploadResponse{Name: name})
}

// Close handles the dialog's close request. While a transfer is in flight
// the close is refused so a capability is never orphaned mid-transfer.
func (h *UploadHandler) Close(c *gin.Context) {
	if h.uploadUsecase.InFlight() {
		c.JSON(http.StatusConflict, dto.Res{ResponseCode: "409", ResponseMessage: "Wait for the current upload to finish"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"closed": true})
}
